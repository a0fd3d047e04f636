package analyzer

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/devopsaudit/internal/config"
)

// Tier levels, best first.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierFair      = "fair"
	TierNeedsWork = "needs_work"
)

// Tier is a qualitative band of the health score.
type Tier struct {
	Level string
	Label string

	// Min is the inclusive lower bound of the band.
	Min int
}

// Scoring defines the displayed max score and the tier boundaries as
// fractions of it.
type Scoring struct {
	MaxScore  int
	Excellent float64
	Good      float64
	Fair      float64
}

// DefaultScoring returns the scoring used when no config overrides it.
func DefaultScoring() Scoring {
	return ScoringFromConfig(config.Scoring{
		MaxScore: config.DefaultMaxScore,
		Tiers:    config.DefaultTiers,
	})
}

// ScoringFromConfig converts the config file section into a Scoring.
func ScoringFromConfig(c config.Scoring) Scoring {
	return Scoring{
		MaxScore:  c.MaxScore,
		Excellent: c.Tiers.Excellent,
		Good:      c.Tiers.Good,
		Fair:      c.Tiers.Fair,
	}
}

// Validate checks that the max score is attainable and the tier fractions
// are strictly descending within (0, 1].
func (s Scoring) Validate() error {
	if s.MaxScore <= 0 {
		return fmt.Errorf("max score must be positive, got %d", s.MaxScore)
	}
	if n := ScoringChecks(); s.MaxScore > n {
		return fmt.Errorf("max score %d exceeds the %d scoring checks", s.MaxScore, n)
	}
	if s.Excellent > 1 || s.Fair <= 0 || !(s.Excellent > s.Good && s.Good > s.Fair) {
		return fmt.Errorf("tier fractions must satisfy 1 >= excellent > good > fair > 0, got %.2f/%.2f/%.2f",
			s.Excellent, s.Good, s.Fair)
	}
	return nil
}

// Tiers returns the bands best first; the last band starts at zero.
func (s Scoring) Tiers() []Tier {
	return []Tier{
		{Level: TierExcellent, Label: "EXCELLENT - Outstanding DevOps practices!", Min: threshold(s.Excellent, s.MaxScore)},
		{Level: TierGood, Label: "GOOD - Solid foundation with room for improvement", Min: threshold(s.Good, s.MaxScore)},
		{Level: TierFair, Label: "FAIR - Several areas need attention", Min: threshold(s.Fair, s.MaxScore)},
		{Level: TierNeedsWork, Label: "NEEDS WORK - Critical improvements required", Min: 0},
	}
}

// TierFor maps a score to its band.
func (s Scoring) TierFor(score int) Tier {
	tiers := s.Tiers()
	for _, t := range tiers {
		if score >= t.Min {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// threshold rounds frac*maxScore up to a whole score, tolerating float error so
// that 0.6*15 resolves to 9 and not 10.
func threshold(frac float64, maxScore int) int {
	return int(math.Ceil(frac*float64(maxScore) - 1e-9))
}
