package analyzer

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/blackwell-systems/devopsaudit/internal/output"
	"github.com/blackwell-systems/devopsaudit/internal/scanner"
)

// countLinesOfCode totals lines across known source extensions, skipping
// build and dependency directories. Unreadable files are skipped. This phase
// does not affect the score.
func (a *Analyzer) countLinesOfCode() error {
	entries, err := scanner.Find(a.fs, scanner.Options{
		Match:   scanner.Extensions(codeExtensions...),
		Exclude: excludedPaths,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	total, files := 0, 0
	for _, e := range entries {
		if e.Dir {
			continue
		}
		n, err := scanner.CountFileLines(a.fs, e.Path)
		if err != nil {
			a.logger.Debug("skipping unreadable source file", "path", e.Path, "err", err)
			continue
		}
		total += n
		files++
	}
	a.metrics.LinesOfCode = total
	a.metrics.SourceFiles = files

	if total > 0 {
		fmt.Fprintf(a.out, " %s %s\n", output.StyleLabel.Render("Total lines of code:"), output.StyleValue.Render(humanize.Comma(int64(total))))
		fmt.Fprintf(a.out, " %s %s\n", output.StyleLabel.Render("Source files analyzed:"), output.StyleValue.Render(fmt.Sprintf("%d", files)))
	} else {
		fmt.Fprintf(a.out, "  %s No code files detected\n", output.StyleWarning.Render("!"))
	}
	return nil
}
