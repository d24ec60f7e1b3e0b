// Package database provides the metric queries behind the membership report.
//
// FILE: queries_activities.go
// PURPOSE: Activity participation metrics: new members seen at activities and
// distinct participant counts for a fixed set of activities.
//
// RELATED FILES:
// - queries.go: Base Queries struct and NewQueries constructor
// - queries_members.go: Membership metrics
// - scanners.go: Row scanning utilities
package database

import (
	"context"
	"time"

	"github.com/svsticky/alvreport/internal/models"
)

// NewMembersAtActivities returns the number of distinct new members who
// attended at least one activity starting after the cutoff date.
func (q *Queries) NewMembersAtActivities(ctx context.Context, studyYearStart, cutoff time.Time) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT(member_id))
		FROM (
			SELECT DISTINCT members.id AS member_id, participants.activity_id
			FROM members
				INNER JOIN participants ON members.id = participants.member_id
			WHERE members.join_date > $1
		) AS visits
			INNER JOIN activities ON visits.activity_id = activities.id
		WHERE activities.start_date > $2`

	return scanCount(q.pool.QueryRow(ctx, query, studyYearStart, cutoff))
}

// ActivitiesSince returns the id and name of every activity starting after
// the given date. Name filtering happens client-side, see report.FilterExternActivities.
func (q *Queries) ActivitiesSince(ctx context.Context, since time.Time) ([]models.Activity, error) {
	query := `SELECT id, name FROM activities WHERE start_date > $1`

	rows, err := q.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	return scanActivities(rows)
}

// ParticipantCountForActivities returns the number of distinct members who
// attended any of the given activities. An empty id list yields zero, not an
// error.
func (q *Queries) ParticipantCountForActivities(ctx context.Context, activityIDs []int32) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT(member_id))
		FROM (
			SELECT DISTINCT members.id AS member_id, participants.activity_id
			FROM members
				INNER JOIN participants ON members.id = participants.member_id
		) AS visits
			INNER JOIN activities ON visits.activity_id = activities.id
		WHERE activities.id IN (SELECT unnest($1::integer[]))`

	return scanCount(q.pool.QueryRow(ctx, query, activityIDs))
}
