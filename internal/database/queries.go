// Package database provides the metric queries behind the membership report.
//
// FILE: queries.go
// PURPOSE: Base Queries struct and constructor. This is the entry point for
// all database operations in the report.
//
// RELATED FILES:
// - queries_members.go: Membership and study distribution metrics
// - queries_activities.go: Activity participation metrics
// - scanners.go: Row scanning helper functions
package database

// Queries provides the database operations for the report.
type Queries struct {
	pool *Pool
}

// NewQueries creates a new Queries instance.
func NewQueries(pool *Pool) *Queries {
	return &Queries{pool: pool}
}
