package analyzer

import (
	"fmt"

	"github.com/blackwell-systems/devopsaudit/internal/output"
	"github.com/blackwell-systems/devopsaudit/internal/suggest"
)

// generateRecommendations prints the score, its tier, a per-category
// breakdown and the quick wins. Quick wins come from re-probing the
// filesystem, not from the recorded state.
func (a *Analyzer) generateRecommendations(tier Tier) []suggest.Suggestion {
	fmt.Fprintln(a.out, output.Section(fmt.Sprintf("HEALTH SCORE: %d/%d", a.state.Score, a.scoring.MaxScore)))
	fmt.Fprintf(a.out, " %s\n", output.ScoreBar(a.state.Score, a.scoring.MaxScore, 30))
	fmt.Fprintf(a.out, " %s\n\n", tierStyle(tier.Level)(tier.Label))
	a.renderBreakdown()

	wins := suggest.NewEngine().Run(&suggest.ProjectContext{FS: a.fs, Logger: a.logger})

	fmt.Fprintln(a.out, output.Section("QUICK WINS"))
	if len(wins) == 0 {
		fmt.Fprintf(a.out, "  %s\n", output.StyleMuted.Render("Nothing to add. The basics are in place."))
	}
	for _, w := range wins {
		fmt.Fprintln(a.out, output.Bullet(w.Title))
		if a.explain {
			fmt.Fprintf(a.out, "    %s\n", output.StyleMuted.Render(w.Description))
		}
	}

	fmt.Fprintf(a.out, "\n %s\n\n", output.StyleBold.Render("Analysis complete!"))
	return wins
}

// renderBreakdown prints pass/fail/warn counts per category.
func (a *Analyzer) renderBreakdown() {
	tbl := output.NewTable("Category", "Passed", "Failed", "Warnings")
	for _, c := range Categories {
		passed, failed, warned := a.state.Tally(c)
		tbl.AddRow(string(c),
			fmt.Sprintf("%d", passed),
			fmt.Sprintf("%d", failed),
			fmt.Sprintf("%d", warned))
	}
	tbl.Fprint(a.out)
}

func tierStyle(level string) func(...string) string {
	switch level {
	case TierExcellent:
		return output.StyleSuccess.Render
	case TierGood, TierFair:
		return output.StyleWarning.Render
	default:
		return output.StyleError.Render
	}
}
