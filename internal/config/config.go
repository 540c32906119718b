// Package config provides configuration loading for assetclass.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/assetclass/internal/lexicon"
	"github.com/fyrsmithlabs/assetclass/internal/logging"
	"github.com/fyrsmithlabs/assetclass/internal/profile"
)

// Config is the root configuration.
type Config struct {
	Logging    logging.Config   `koanf:"logging"`
	Training   TrainingConfig   `koanf:"training"`
	Classifier ClassifierConfig `koanf:"classifier"`
	Lexicon    LexiconConfig    `koanf:"lexicon"`
}

// TrainingConfig points at the labeled training data.
type TrainingConfig struct {
	// Path is a CSV file with asset name and category columns.
	Path string `koanf:"path"`
}

// ClassifierConfig tunes scoring.
type ClassifierConfig struct {
	Weights     profile.Weights     `koanf:"weights"`
	Multipliers profile.Multipliers `koanf:"multipliers"`
	// Profiles replaces the built-in category profiles entirely when set.
	Profiles []profile.Profile `koanf:"profiles"`
	// TopK is how many ranked categories commands print. 0 means all.
	TopK int `koanf:"top_k"`
}

// LexiconConfig extends the built-in reserved-word lexicon.
type LexiconConfig struct {
	// Extra entries are merged over the defaults; a duplicate phrase
	// overrides the built-in decomposition.
	Extra []lexicon.Entry `koanf:"extra"`
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Classifier.Weights.Validate(); err != nil {
		return fmt.Errorf("classifier weights: %w", err)
	}
	if c.Classifier.TopK < 0 {
		return fmt.Errorf("classifier top_k must be >= 0, got %d", c.Classifier.TopK)
	}
	for i, p := range c.Classifier.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("classifier profiles[%d]: %w", i, err)
		}
	}
	for i, entry := range c.Lexicon.Extra {
		if entry.Phrase == "" {
			return fmt.Errorf("lexicon extra[%d]: phrase cannot be empty", i)
		}
	}
	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging = *logging.NewDefaultConfig()
	}
	if cfg.Classifier.Weights.IsZero() {
		cfg.Classifier.Weights = profile.DefaultWeights()
	}
	if cfg.Classifier.Multipliers.IsZero() {
		cfg.Classifier.Multipliers = profile.DefaultMultipliers()
	}
}
