// Package profile defines the declarative per-category scoring profile:
// tiered keywords, regex patterns and boost/exclude rules. Classifier
// variants are data here, not code — tuning a category means editing its
// profile, never adding another classifier type.
package profile

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrEmptyCategory is returned by Validate for a profile without a category
// name.
var ErrEmptyCategory = errors.New("profile category is empty")

// Keyword tier weights. Strong keywords outweigh medium outweigh weak; the
// keyword sub-score is normalized by the maximum attainable sum so long
// keyword lists do not inherently favor their category.
const (
	StrongWeight = 3.0
	MediumWeight = 2.0
	WeakWeight   = 1.0
)

// Reserved-phrase tier increments. A matched reserved phrase that appears in
// a keyword tier contributes a fixed increment per tier; the sum is divided
// by the number of reserved phrases found and capped at 1.
const (
	ReservedStrong = 4.0
	ReservedMedium = 3.0
	ReservedWeak   = 2.0
)

// Tiers holds the strong/medium/weak keyword lists of one category.
type Tiers struct {
	Strong []string `koanf:"strong" yaml:"strong"`
	Medium []string `koanf:"medium" yaml:"medium"`
	Weak   []string `koanf:"weak" yaml:"weak"`
}

// MaxScore returns the maximum attainable keyword score for these tiers.
func (t Tiers) MaxScore() float64 {
	return float64(len(t.Strong))*StrongWeight +
		float64(len(t.Medium))*MediumWeight +
		float64(len(t.Weak))*WeakWeight
}

// CompoundRule fires only when a specific reserved phrase and a specific
// substring co-occur in the input. Used to disambiguate cases like
// "防火牆"+"設備", which should pull toward hardware even though 防火牆 alone
// also shows up in software rows.
type CompoundRule struct {
	Reserved string `koanf:"reserved" yaml:"reserved"`
	Contains string `koanf:"contains" yaml:"contains"`
}

// Rules are the post-hoc multiplicative adjustments of one category. Within
// a classification, the first matching rule fires and no further rules
// stack.
type Rules struct {
	// IncludeReserved boosts the category when any matched reserved phrase
	// is on the list.
	IncludeReserved []string `koanf:"include_reserved" yaml:"include_reserved"`
	// ExcludeReserved penalizes the category when any matched reserved
	// phrase is on the list.
	ExcludeReserved []string `koanf:"exclude_reserved" yaml:"exclude_reserved"`
	// IncludeContains / ExcludeContains are the same checks against the
	// combined input text rather than the reserved-phrase set.
	IncludeContains []string `koanf:"include_contains" yaml:"include_contains"`
	ExcludeContains []string `koanf:"exclude_contains" yaml:"exclude_contains"`
	// Compound rules require a reserved phrase and a substring together.
	IncludeCompound []CompoundRule `koanf:"include_compound" yaml:"include_compound"`
	ExcludeCompound []CompoundRule `koanf:"exclude_compound" yaml:"exclude_compound"`
}

// Profile is the full scoring profile of one category. Built once at
// classifier construction and read-only afterwards.
type Profile struct {
	Category string   `koanf:"category" yaml:"category"`
	Keywords Tiers    `koanf:"keywords" yaml:"keywords"`
	Patterns []string `koanf:"patterns" yaml:"patterns"`
	Rules    Rules    `koanf:"rules" yaml:"rules"`
}

// Validate checks the profile for structural problems. Invalid regex
// patterns are reported but tolerated by the classifier (it skips them with
// a warning), so Validate only rejects what the classifier cannot work
// around.
func (p Profile) Validate() error {
	if p.Category == "" {
		return ErrEmptyCategory
	}
	for _, pat := range p.Patterns {
		if _, err := regexp.Compile(pat); err != nil {
			return fmt.Errorf("category %s: pattern %q: %w", p.Category, pat, err)
		}
	}
	return nil
}

// Weights is the convex combination of the four sub-scores. Reserved is
// weighted heaviest, then keyword, pattern, similarity.
type Weights struct {
	Reserved   float64 `koanf:"reserved" yaml:"reserved"`
	Keyword    float64 `koanf:"keyword" yaml:"keyword"`
	Pattern    float64 `koanf:"pattern" yaml:"pattern"`
	Similarity float64 `koanf:"similarity" yaml:"similarity"`
}

// DefaultWeights mirrors the tuning the profiles were calibrated against.
func DefaultWeights() Weights {
	return Weights{Reserved: 0.40, Keyword: 0.25, Pattern: 0.20, Similarity: 0.15}
}

// IsZero reports whether no weight has been set.
func (w Weights) IsZero() bool { return w == Weights{} }

// Validate rejects negative weights. The zero value means "use defaults"
// and is always valid.
func (w Weights) Validate() error {
	if w.Reserved < 0 || w.Keyword < 0 || w.Pattern < 0 || w.Similarity < 0 {
		return fmt.Errorf("weights must be >= 0: %+v", w)
	}
	return nil
}

// Multipliers are the rule adjustment factors applied by the first matching
// rule.
type Multipliers struct {
	IncludeReserved float64 `koanf:"include_reserved" yaml:"include_reserved"`
	ExcludeReserved float64 `koanf:"exclude_reserved" yaml:"exclude_reserved"`
	IncludeContains float64 `koanf:"include_contains" yaml:"include_contains"`
	ExcludeContains float64 `koanf:"exclude_contains" yaml:"exclude_contains"`
	IncludeCompound float64 `koanf:"include_compound" yaml:"include_compound"`
	ExcludeCompound float64 `koanf:"exclude_compound" yaml:"exclude_compound"`
}

// IsZero reports whether no multiplier has been set.
func (m Multipliers) IsZero() bool { return m == Multipliers{} }

// DefaultMultipliers returns the calibrated rule factors: reserved-phrase
// rules swing harder (×2.0 / ×0.2) than plain substring rules (×1.5 / ×0.3).
func DefaultMultipliers() Multipliers {
	return Multipliers{
		IncludeReserved: 2.0,
		ExcludeReserved: 0.2,
		IncludeContains: 1.5,
		ExcludeContains: 0.3,
		IncludeCompound: 2.0,
		ExcludeCompound: 0.2,
	}
}
