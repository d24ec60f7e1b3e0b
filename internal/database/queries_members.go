// Package database provides the metric queries behind the membership report.
//
// FILE: queries_members.go
// PURPOSE: Membership metrics: study distributions, new-member counts, the
// bachelor/master split and the join-year series.
//
// All counts are COUNT(DISTINCT members.id): a member with multiple
// enrollments or participations is never counted twice within one metric.
// "New" always means join_date strictly after the study-year start.
//
// RELATED FILES:
// - queries.go: Base Queries struct and NewQueries constructor
// - queries_activities.go: Activity participation metrics
// - scanners.go: Row scanning utilities
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/svsticky/alvreport/internal/config"
	"github.com/svsticky/alvreport/internal/models"
)

// StudyDistribution returns the number of distinct members per study code
// across all active enrollments, regardless of join date.
func (q *Queries) StudyDistribution(ctx context.Context) ([]models.StudyCodeCount, error) {
	query := `
		SELECT studies.code, COUNT(DISTINCT(members.id))
		FROM members
			JOIN educations ON members.id = educations.member_id
			JOIN studies ON educations.study_id = studies.id
		WHERE educations.status = 0
		GROUP BY studies.code`

	rows, err := q.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanStudyCodeCounts(rows)
}

// NewMemberCount returns the number of distinct members with an active
// enrollment who joined after the study-year start.
func (q *Queries) NewMemberCount(ctx context.Context, studyYearStart time.Time) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT(members.id))
		FROM members
			JOIN educations ON members.id = educations.member_id
			JOIN studies ON educations.study_id = studies.id
		WHERE educations.status = 0 AND members.join_date > $1`

	return scanCount(q.pool.QueryRow(ctx, query, studyYearStart))
}

// NewBachelorCount returns the number of distinct new members enrolled in a
// bachelor programme.
func (q *Queries) NewBachelorCount(ctx context.Context, studyYearStart time.Time) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT(members.id))
		FROM members
			INNER JOIN educations ON members.id = educations.member_id
		WHERE members.join_date > $1 AND educations.study_id < %d`,
		config.BachelorStudyIDLimit)

	return scanCount(q.pool.QueryRow(ctx, query, studyYearStart))
}

// NewMasterCount returns the number of distinct new members enrolled in a
// master programme.
func (q *Queries) NewMasterCount(ctx context.Context, studyYearStart time.Time) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT(members.id))
		FROM members
			INNER JOIN educations ON members.id = educations.member_id
		WHERE members.join_date > $1 AND educations.study_id >= %d`,
		config.BachelorStudyIDLimit)

	return scanCount(q.pool.QueryRow(ctx, query, studyYearStart))
}

// NewStudyDistribution returns the distribution over study codes of distinct
// members with an active enrollment who joined after the study-year start.
func (q *Queries) NewStudyDistribution(ctx context.Context, studyYearStart time.Time) ([]models.StudyCodeCount, error) {
	query := `
		SELECT studies.code, COUNT(DISTINCT(members.id))
		FROM members
			JOIN educations ON members.id = educations.member_id
			JOIN studies ON educations.study_id = studies.id
		WHERE educations.status = 0 AND members.join_date > $1
		GROUP BY studies.code`

	rows, err := q.pool.Query(ctx, query, studyYearStart)
	if err != nil {
		return nil, err
	}
	return scanStudyCodeCounts(rows)
}

// NewActiveMemberCount returns the number of distinct new members with at
// least one group membership. Group membership is not checked against the
// join date: any committee record makes a member active.
func (q *Queries) NewActiveMemberCount(ctx context.Context, studyYearStart time.Time) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT(member_id))
		FROM members
			INNER JOIN group_members ON members.id = group_members.member_id
		WHERE members.join_date > $1`

	return scanCount(q.pool.QueryRow(ctx, query, studyYearStart))
}

// NewActiveStudyDistribution returns the distribution over study codes of
// distinct new members who have a group membership and an active enrollment.
// The total can differ from NewActiveMemberCount because members enrolled in
// multiple studies appear under every code.
func (q *Queries) NewActiveStudyDistribution(ctx context.Context, studyYearStart time.Time) ([]models.StudyCodeCount, error) {
	query := `
		SELECT studies.code, COUNT(DISTINCT(members.id))
		FROM members
			INNER JOIN group_members ON members.id = group_members.member_id
			JOIN educations ON members.id = educations.member_id
			JOIN studies ON educations.study_id = studies.id
		WHERE educations.status = 0 AND members.join_date > $1
		GROUP BY studies.code`

	rows, err := q.pool.Query(ctx, query, studyYearStart)
	if err != nil {
		return nil, err
	}
	return scanStudyCodeCounts(rows)
}

// JoinYearSeries buckets distinct members by the study year they joined in,
// one bucket per year from the series start through the current study-year
// start. The LEFT JOIN against the generated series keeps years without new
// members in the result with a zero count.
func (q *Queries) JoinYearSeries(ctx context.Context, studyYearStart time.Time) ([]models.JoinYearCount, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM year_start)::int AS join_year,
			COUNT(DISTINCT(members.id)) FILTER (
				WHERE members.join_date > year_start AND members.join_date <= year_start + interval '1 year'
			) AS members
		FROM generate_series($2::date, $1::date, '1 year') AS year_start
		LEFT JOIN members
			ON members.join_date > year_start AND members.join_date <= year_start + interval '1 year'
		GROUP BY join_year
		ORDER BY join_year`

	rows, err := q.pool.Query(ctx, query, studyYearStart, config.JoinYearSeriesStart)
	if err != nil {
		return nil, err
	}
	return scanJoinYearCounts(rows)
}
