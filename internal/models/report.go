// Package models defines the row shapes produced by the report queries.
package models

// StudyCodeCount is one row of a per-study distribution: a study code and the
// number of distinct members enrolled under it. Multiple study ids sharing a
// code collapse into a single row.
type StudyCodeCount struct {
	Code  string
	Count int64
}

// JoinYearCount is one bucket of the join-year series: the calendar year a
// study year starts in and the number of distinct members who joined during
// that study year. Years without new members appear with a zero count.
type JoinYearCount struct {
	JoinYear int32
	Members  int64
}

// Activity identifies an activity by id and name.
type Activity struct {
	ID   int32
	Name string
}
