// Package database provides the metric queries behind the membership report.
//
// FILE: scanners.go
// PURPOSE: Row scanning helper functions for converting query results to
// model structs.
//
// RELATED FILES:
// - queries_members.go: Uses scanStudyCodeCounts, scanJoinYearCounts, scanCount
// - queries_activities.go: Uses scanActivities, scanCount
package database

import (
	"github.com/jackc/pgx/v5"

	"github.com/svsticky/alvreport/internal/models"
)

func scanStudyCodeCounts(rows pgx.Rows) ([]models.StudyCodeCount, error) {
	defer rows.Close()

	var counts []models.StudyCodeCount
	for rows.Next() {
		var c models.StudyCodeCount
		if err := rows.Scan(&c.Code, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func scanJoinYearCounts(rows pgx.Rows) ([]models.JoinYearCount, error) {
	defer rows.Close()

	var buckets []models.JoinYearCount
	for rows.Next() {
		var b models.JoinYearCount
		if err := rows.Scan(&b.JoinYear, &b.Members); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func scanActivities(rows pgx.Rows) ([]models.Activity, error) {
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func scanCount(row pgx.Row) (int64, error) {
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
