package classifier

import (
	"strings"
)

// adjust applies the category's boost/exclude rules to the raw combined
// score. Rules are evaluated in a fixed order — include-reserved,
// exclude-reserved, include-contains, exclude-contains, then the compound
// reserved+substring rules — and the first match wins; nothing stacks.
func (c *Classifier) adjust(v textVariants, cp *compiledProfile, raw float64) float64 {
	rules := cp.Rules

	for _, phrase := range rules.IncludeReserved {
		if hasReserved(v, phrase) {
			return raw * c.multipliers.IncludeReserved
		}
	}
	for _, phrase := range rules.ExcludeReserved {
		if hasReserved(v, phrase) {
			return raw * c.multipliers.ExcludeReserved
		}
	}
	for _, sub := range rules.IncludeContains {
		if containsFold(v.ruleText, sub) {
			return raw * c.multipliers.IncludeContains
		}
	}
	for _, sub := range rules.ExcludeContains {
		if containsFold(v.ruleText, sub) {
			return raw * c.multipliers.ExcludeContains
		}
	}
	for _, rule := range rules.IncludeCompound {
		if hasReserved(v, rule.Reserved) && containsFold(v.ruleText, rule.Contains) {
			return raw * c.multipliers.IncludeCompound
		}
	}
	for _, rule := range rules.ExcludeCompound {
		if hasReserved(v, rule.Reserved) && containsFold(v.ruleText, rule.Contains) {
			return raw * c.multipliers.ExcludeCompound
		}
	}

	return raw
}

// hasReserved reports whether the input's matched reserved phrases include
// phrase.
func hasReserved(v textVariants, phrase string) bool {
	for _, rw := range v.processed.ReservedWords {
		if rw == phrase {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring check against the
// already-lowercased rule text.
func containsFold(ruleText, sub string) bool {
	return strings.Contains(ruleText, strings.ToLower(sub))
}
