package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for score out of maxScore.
// Example: "████████████████░░░░ 12/15"
//
// Scores above maxScore fill the bar completely; the numeric label still shows
// the raw value.
func ScoreBar(score, maxScore, width int) string {
	if width <= 0 {
		width = 20
	}
	ratio := 0.0
	if maxScore > 0 {
		ratio = float64(score) / float64(maxScore)
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case ratio >= 0.7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case ratio >= 0.4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/%d", score, maxScore)))
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Bullet renders a single quick-win style list item.
func Bullet(text string) string {
	return fmt.Sprintf("  %s %s", StyleHeader.Render("•"), text)
}
