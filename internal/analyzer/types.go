// Package analyzer runs the DevOps health checks against a project tree and
// renders the report.
package analyzer

import (
	"time"

	"github.com/blackwell-systems/devopsaudit/internal/suggest"
)

// Outcome is the result of a single check.
type Outcome string

const (
	OutcomePass Outcome = "pass"
	OutcomeFail Outcome = "fail"
	OutcomeWarn Outcome = "warn"
)

// Category groups checks in the report breakdown.
type Category string

const (
	CategoryGit      Category = "git"
	CategoryDocs     Category = "docs"
	CategoryDeps     Category = "deps"
	CategoryTesting  Category = "testing"
	CategoryCICD     Category = "cicd"
	CategoryDocker   Category = "docker"
	CategorySecurity Category = "security"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryGit,
	CategoryDocs,
	CategoryDeps,
	CategoryTesting,
	CategoryCICD,
	CategoryDocker,
	CategorySecurity,
}

// Severity ranks how much a recorded result matters.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Result is one recorded check.
type Result struct {
	Outcome        Outcome
	Category       Category
	Message        string
	Severity       Severity
	Recommendation string
}

// State accumulates check outcomes over a single run.
type State struct {
	// Score counts passing checks.
	Score int

	// Findings holds failure messages in the order they were recorded.
	Findings []string

	// Warnings holds warning messages in the order they were recorded.
	Warnings []string

	// Results holds every recorded check, passes included.
	Results []Result
}

// Tally returns the pass, fail and warn counts recorded for category.
func (s *State) Tally(category Category) (passed, failed, warned int) {
	for _, r := range s.Results {
		if r.Category != category {
			continue
		}
		switch r.Outcome {
		case OutcomePass:
			passed++
		case OutcomeFail:
			failed++
		case OutcomeWarn:
			warned++
		}
	}
	return passed, failed, warned
}

// Metrics holds the measurements gathered alongside the checks.
type Metrics struct {
	LinesOfCode int
	SourceFiles int
	TestFiles   int
	Ecosystems  []string
	Workflows   int
}

// Report is the outcome of a complete run.
type Report struct {
	Project   string
	Path      string
	Timestamp time.Time
	Duration  time.Duration
	State     State
	Metrics   Metrics
	MaxScore  int
	Tier      Tier
	QuickWins []suggest.Suggestion
}
