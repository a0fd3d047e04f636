package analyzer

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// analyzeCICD records every configured CI/CD provider. Directory-based
// providers also report how many workflow files they hold.
func (a *Analyzer) analyzeCICD() error {
	found := false
	for _, p := range ciProviders {
		if !a.exists(p.path) {
			continue
		}
		found = true

		if !a.isDir(p.path) {
			a.recordPass(CategoryCICD, p.label+" configured")
			continue
		}
		n := a.countWorkflows(p.path)
		a.metrics.Workflows += n
		a.recordPass(CategoryCICD, fmt.Sprintf("%s configured (%d workflows)", p.label, n))
	}

	if !found {
		a.recordFail(CategoryCICD, "No CI/CD configuration found",
			"Set up CI/CD pipeline for automated testing and deployment")
	}
	return nil
}

// countWorkflows counts the immediate children of dir whose names end in a
// workflow extension.
func (a *Analyzer) countWorkflows(dir string) int {
	entries, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		a.logger.Debug("reading workflow directory", "path", dir, "err", err)
		return 0
	}

	n := 0
	for _, e := range entries {
		for _, ext := range workflowExtensions {
			if strings.HasSuffix(e.Name(), ext) {
				n++
				break
			}
		}
	}
	return n
}
