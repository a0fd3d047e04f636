package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level devopsaudit configuration.
type Config struct {
	Scoring Scoring `mapstructure:"scoring"`
	Output  Output  `mapstructure:"output"`
}

// Scoring controls how the health score maps to tiers.
type Scoring struct {
	MaxScore int   `mapstructure:"max_score"`
	Tiers    Tiers `mapstructure:"tiers"`
}

// Tiers holds the lower-bound fractions of MaxScore for each tier.
type Tiers struct {
	Excellent float64 `mapstructure:"excellent"`
	Good      float64 `mapstructure:"good"`
	Fair      float64 `mapstructure:"fair"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error; a malformed one is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("scoring.max_score", DefaultMaxScore)
	v.SetDefault("scoring.tiers.excellent", DefaultTiers.Excellent)
	v.SetDefault("scoring.tiers.good", DefaultTiers.Good)
	v.SetDefault("scoring.tiers.fair", DefaultTiers.Fair)
	v.SetDefault("output.color", DefaultOutput.Color)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
