// Package suggest provides the quick-win engine and its rules.
package suggest

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Priority levels for suggestions.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Suggestion represents a low-effort remediation.
type Suggestion struct {
	Category    string
	Priority    int
	Title       string
	Description string
}

// ProjectContext is what the rules probe. Rules look at the filesystem
// directly rather than at previously recorded check results.
type ProjectContext struct {
	// FS is rooted at the project directory.
	FS afero.Fs

	// Logger receives debug records for probe errors. May be nil.
	Logger *slog.Logger
}

// Rule is a function that probes the project and produces zero or more
// suggestions.
type Rule func(ctx *ProjectContext) []Suggestion
