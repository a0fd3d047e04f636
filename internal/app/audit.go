package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devopsaudit/internal/analyzer"
	"github.com/blackwell-systems/devopsaudit/internal/config"
	"github.com/blackwell-systems/devopsaudit/internal/output"
)

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagNoColor || !cfg.Output.Color || !isTerminal(out) {
		output.SetNoColor(true)
	}
	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	project := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cwd))

	a := analyzer.New(project,
		analyzer.WithOutput(out),
		analyzer.WithLogger(logger),
		analyzer.WithScoring(analyzer.ScoringFromConfig(cfg.Scoring)),
		analyzer.WithProjectPath(cwd),
		analyzer.WithExplain(flagExplain),
	)
	report, err := a.Run()
	if err != nil {
		return err
	}

	logger.Debug("audit finished",
		"project", report.Project,
		"score", report.State.Score,
		"tier", report.Tier.Level,
		"findings", len(report.State.Findings),
		"warnings", len(report.State.Warnings),
		"duration", report.Duration)
	return nil
}

// newLogger returns a text logger on w. Only warnings are shown unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
