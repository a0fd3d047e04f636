package analyzer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/blackwell-systems/devopsaudit/internal/output"
	"github.com/blackwell-systems/devopsaudit/internal/scanner"
)

// Analyzer runs every check phase against a project filesystem and prints
// the report as it goes.
type Analyzer struct {
	fs          afero.Fs
	out         io.Writer
	logger      *slog.Logger
	scoring     Scoring
	now         func() time.Time
	projectPath string
	explain     bool

	state   State
	metrics Metrics
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithOutput sets where the report is printed. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(a *Analyzer) { a.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithScoring overrides the default max score and tier boundaries.
func WithScoring(s Scoring) Option {
	return func(a *Analyzer) { a.scoring = s }
}

// WithClock overrides time.Now for the report timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithProjectPath sets the path shown in the report header.
func WithProjectPath(path string) Option {
	return func(a *Analyzer) { a.projectPath = path }
}

// WithExplain prints a recommendation under every failure and warning.
func WithExplain(explain bool) Option {
	return func(a *Analyzer) { a.explain = explain }
}

// New creates an Analyzer over fsys, which must be rooted at the project
// directory.
func New(fsys afero.Fs, opts ...Option) *Analyzer {
	a := &Analyzer{
		fs:          fsys,
		out:         io.Discard,
		logger:      slog.New(slog.DiscardHandler),
		scoring:     DefaultScoring(),
		now:         time.Now,
		projectPath: scanner.Root,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// phase is one titled section of the report.
type phase struct {
	title string
	run   func() error
}

// Run executes phases 1-7 in order followed by the score and quick-win
// report. The returned error is reserved for environment problems such as an
// unreadable project root; missing artifacts are recorded, never returned.
func (a *Analyzer) Run() (*Report, error) {
	if err := a.scoring.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	if _, err := afero.ReadDir(a.fs, scanner.Root); err != nil {
		return nil, fmt.Errorf("reading project directory: %w", err)
	}

	a.state = State{}
	a.metrics = Metrics{}
	start := a.now()

	report := &Report{
		Project:   filepath.Base(a.projectPath),
		Path:      a.projectPath,
		Timestamp: start,
		MaxScore:  a.scoring.MaxScore,
	}
	a.printHeader(report)

	phases := []phase{
		{"PROJECT STRUCTURE", a.analyzeStructure},
		{"DEPENDENCIES", a.analyzeDependencies},
		{"TESTING", a.analyzeTesting},
		{"CI/CD", a.analyzeCICD},
		{"CONTAINERIZATION", a.analyzeDocker},
		{"SECURITY", a.analyzeSecurity},
		{"CODE METRICS", a.countLinesOfCode},
	}
	for _, p := range phases {
		fmt.Fprintln(a.out, output.Section(p.title))
		if err := p.run(); err != nil {
			return nil, fmt.Errorf("%s: %w", p.title, err)
		}
		a.logger.Debug("phase complete", "phase", p.title, "score", a.state.Score)
	}

	report.State = a.state
	report.Metrics = a.metrics
	report.Tier = a.scoring.TierFor(a.state.Score)
	report.QuickWins = a.generateRecommendations(report.Tier)
	report.Duration = a.now().Sub(start)

	return report, nil
}

// State returns the state accumulated by the most recent Run.
func (a *Analyzer) State() State {
	return a.state
}

func (a *Analyzer) printHeader(r *Report) {
	fmt.Fprintln(a.out, output.Section("DEVOPS PROJECT ANALYZER"))
	fmt.Fprintf(a.out, " %s %s\n", output.StyleLabel.Render("Analysis time:"), r.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, " %s %s\n", output.StyleLabel.Render("Project path:"), r.Path)
	fmt.Fprintf(a.out, " %s %s\n", output.StyleLabel.Render("Project name:"), output.StyleValue.Render(r.Project))
}

// recordPass counts a passing check.
func (a *Analyzer) recordPass(category Category, msg string) {
	a.state.Score++
	a.state.Results = append(a.state.Results, Result{
		Outcome:  OutcomePass,
		Category: category,
		Message:  msg,
		Severity: SeverityLow,
	})
	fmt.Fprintf(a.out, "  %s %s\n", output.StyleSuccess.Render("✓"), msg)
}

// recordFail records a hard finding.
func (a *Analyzer) recordFail(category Category, msg, recommendation string) {
	a.state.Findings = append(a.state.Findings, msg)
	a.state.Results = append(a.state.Results, Result{
		Outcome:        OutcomeFail,
		Category:       category,
		Message:        msg,
		Severity:       SeverityHigh,
		Recommendation: recommendation,
	})
	fmt.Fprintf(a.out, "  %s %s\n", output.StyleError.Render("✗"), msg)
	a.printRecommendation(recommendation)
}

// recordWarn records a soft finding.
func (a *Analyzer) recordWarn(category Category, msg, recommendation string) {
	a.state.Warnings = append(a.state.Warnings, msg)
	a.state.Results = append(a.state.Results, Result{
		Outcome:        OutcomeWarn,
		Category:       category,
		Message:        msg,
		Severity:       SeverityMedium,
		Recommendation: recommendation,
	})
	fmt.Fprintf(a.out, "  %s %s\n", output.StyleWarning.Render("!"), msg)
	a.printRecommendation(recommendation)
}

func (a *Analyzer) printRecommendation(recommendation string) {
	if !a.explain || recommendation == "" {
		return
	}
	fmt.Fprintf(a.out, "      %s\n", output.StyleMuted.Render("→ "+recommendation))
}

// exists reports whether path exists, following symlinks.
func (a *Analyzer) exists(path string) bool {
	ok, err := afero.Exists(a.fs, path)
	if err != nil {
		a.logger.Debug("stat failed", "path", path, "err", err)
	}
	return ok
}

// isDir reports whether path exists and is a directory.
func (a *Analyzer) isDir(path string) bool {
	ok, err := afero.IsDir(a.fs, path)
	if err != nil && !isNotExist(err) {
		a.logger.Debug("stat failed", "path", path, "err", err)
	}
	return ok
}

// anyExists reports whether at least one of paths exists.
func (a *Analyzer) anyExists(paths ...string) bool {
	for _, p := range paths {
		if a.exists(p) {
			return true
		}
	}
	return false
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
