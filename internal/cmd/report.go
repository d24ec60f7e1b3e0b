package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/svsticky/alvreport/internal/config"
	"github.com/svsticky/alvreport/internal/database"
	"github.com/svsticky/alvreport/internal/logging"
	"github.com/svsticky/alvreport/internal/report"
	"github.com/svsticky/alvreport/internal/ui"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <db-name> <db-user> <db-password> <study-year-start> <cutoff-date>",
	Short: "Run the membership metrics and print the report",
	Long: `Connect to the koala database and print the A2-A13 membership report.

Arguments:
  db-name           Database name, normally "koala"
  db-user           Database user, normally "koala_manual"
  db-password       Password for the database user, ask the ITCrowd
  study-year-start  Start of the study year, format YYYY-MM-DD
  cutoff-date       Day after the last introduction activity, format YYYY-MM-DD

The report goes to stdout, one table per section. Informational logging goes
to stderr; set ALVREPORT_LOG_LEVEL (debug, info, warn, error) to tune it.

Example:
  alvreport report koala koala_manual hunter2 2022-09-01 2022-10-01`,
	Args: cobra.ExactArgs(5),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.LogLevel)
	log.Info().Msgf("'%s' v%s", appName, Version)

	// Both dates must parse before a connection is opened
	studyYearStart, err := report.ParseDate("study-year-start", args[3])
	if err != nil {
		return err
	}
	cutoff, err := report.ParseDate("cutoff-date", args[4])
	if err != nil {
		return err
	}

	cfg.Database.Name = args[0]
	cfg.Database.User = args[1]
	cfg.Database.Password = args[2]

	pool, err := database.NewPool(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database %q: %w", cfg.Database.Name, err)
	}
	defer pool.Close()

	connectCtx, cancel := context.WithTimeout(cmd.Context(), cfg.Database.ConnectTimeout)
	defer cancel()
	if err := pool.Connect(connectCtx); err != nil {
		return fmt.Errorf("connecting to database %q: %w", cfg.Database.Name, err)
	}
	log.Info().
		Str("database", cfg.Database.Name).
		Str("user", cfg.Database.User).
		Msg("Connected to database")

	log.Info().
		Time("study_year_start", studyYearStart).
		Time("cutoff", cutoff).
		Msg("Collecting and printing metrics")

	runner := report.NewRunner(database.NewQueries(pool), u, studyYearStart, cutoff)
	if err := runner.Run(cmd.Context()); err != nil {
		return err
	}

	stats := pool.Stats()
	log.Info().
		Int64("queries", stats.TotalQueries).
		Dur("avg_latency", stats.AvgLatency).
		Msg("Done")

	return nil
}
