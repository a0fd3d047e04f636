// Package app contains the Cobra command tree for devopsaudit.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagVerbose bool
	flagExplain bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "devopsaudit",
	Short: "Audit the current project for DevOps readiness",
	Long: `devopsaudit inspects the project in the current directory for common
DevOps practices: version control, documentation, dependency management,
testing, CI/CD, containerization and basic security hygiene. It prints a
report for each area, a health score with its tier, and a short list of
quick wins.

The project is only read, never modified.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAudit,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/devopsaudit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagExplain, "explain", false, "Print a recommendation under each failure and warning")
}
