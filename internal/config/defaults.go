// Package config contains compile-time defaults for alvreport.
// Edit these values and recompile to tune behavior.
package config

import "time"

// Database endpoint. The report runs against the koala database over a local
// tunnel, so host and port are fixed rather than command-line arguments.
const (
	// DBHost is the database host.
	DBHost = "127.0.0.1"

	// DBPort is the database port.
	DBPort = 5432
)

// Connection pool sizing. A single sequential reporting session needs very
// little.
const (
	// DBMaxConns is the maximum number of pooled connections.
	DBMaxConns = 4

	// DBMinConns is the number of connections kept open.
	DBMinConns = 1

	// DBConnectTimeout bounds the initial connect and ping.
	DBConnectTimeout = 10 * time.Second
)

// Report constants. These replicate conventions defined by the koala schema.
const (
	// BachelorStudyIDLimit splits studies into bachelor and master
	// programmes: study ids below this limit are bachelor, ids at or above
	// it are master.
	BachelorStudyIDLimit = 5

	// JoinYearSeriesStart is the first bucket of the join-year series
	// (section A8), the start of the study year the association began
	// tracking join dates.
	JoinYearSeriesStart = "2010-08-01"

	// ExternPrefix marks activities organised with external parties. The
	// match is against the lower-cased, trimmed activity name.
	ExternPrefix = "extern"
)
