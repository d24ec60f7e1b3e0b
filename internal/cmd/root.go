package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/svsticky/alvreport/internal/ui"
)

// appName is the tool name used in the startup banner.
const appName = "alvreport"

var noColor bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "alvreport",
	Short: "Membership metrics report for the general assembly",
	Long: `One-shot reporting tool for the koala membership database.

Runs the fixed A2-A13 battery of membership metrics (study distributions,
new members, active members, activity participation) over a study year and
prints each result as a table on stdout. Log output goes to stderr.

Example usage:
  alvreport report koala koala_manual <password> 2022-09-01 2022-10-01`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		u := ui.New()
		if noColor {
			u.SetNoColor(true)
		}
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")

	// Errors get one styled message from Execute, not cobra's default
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Set version template
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
