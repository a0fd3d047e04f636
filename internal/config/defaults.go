// Package config provides configuration loading and defaults for devopsaudit.
package config

// DefaultConfigDir is the default location for devopsaudit configuration.
const DefaultConfigDir = "~/.config/devopsaudit"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultMaxScore is the health score shown as the maximum in the report.
const DefaultMaxScore = 15

// DefaultTiers holds the fractions of the max score at which each
// qualitative tier begins. With the default max of 15 these resolve to the
// absolute thresholds 12, 9 and 6.
var DefaultTiers = Tiers{
	Excellent: 0.8,
	Good:      0.6,
	Fair:      0.4,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
