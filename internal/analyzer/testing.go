package analyzer

import (
	"fmt"

	"github.com/blackwell-systems/devopsaudit/internal/scanner"
)

// analyzeTesting looks for test files anywhere in the tree, a dedicated test
// directory and a test runner config. A missing config is not recorded.
func (a *Analyzer) analyzeTesting() error {
	entries, err := scanner.Find(a.fs, scanner.Options{
		Match:  scanner.Patterns(testPatterns...),
		Logger: a.logger,
	})
	if err != nil {
		return err
	}

	files := scanner.Files(entries)
	a.metrics.TestFiles = len(files)
	if len(files) > 0 {
		a.recordPass(CategoryTesting, fmt.Sprintf("Test files found (%d files)", len(files)))
	} else {
		a.recordFail(CategoryTesting, "No test files detected",
			"Implement automated tests to ensure code quality and reliability")
	}

	hasTestDir := false
	for _, d := range testDirs {
		if a.isDir(d) {
			hasTestDir = true
			break
		}
	}
	if hasTestDir {
		a.recordPass(CategoryTesting, "Test directory exists")
	} else {
		a.recordWarn(CategoryTesting, "No dedicated test directory",
			"Group tests under a test/ or tests/ directory")
	}

	if a.anyExists(testConfigs...) {
		a.recordPass(CategoryTesting, "Test configuration detected")
	}
	return nil
}
