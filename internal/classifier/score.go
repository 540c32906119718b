package classifier

import (
	"regexp"
	"strings"

	"github.com/fyrsmithlabs/assetclass/internal/profile"
	"github.com/fyrsmithlabs/assetclass/internal/segment"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Brackets in asset names hold qualifiers like "(機房A)"; both ASCII and
	// full-width forms occur in inventories.
	bracketRE        = regexp.MustCompile(`[（(][^)）]*[)）]`)
	bracketContentRE = regexp.MustCompile(`[（(]([^)）]*)[)）]`)
)

// textVariants are the per-input textual forms fed to the scorers. Derived
// once per classification, never cached across calls.
type textVariants struct {
	original       string
	cleaned        string
	noBrackets     string
	bracketContent string
	processed      segment.ProcessedText

	// keywordText is the lowercased concatenation of all variants used for
	// keyword containment checks.
	keywordText string
	// ruleText is the lowercased text the contains-rules match against.
	ruleText string
	// patternTexts are the candidate strings for regex matching.
	patternTexts []string
	// combined feeds the similarity lookup.
	combined string
}

// variants preprocesses the input: whitespace normalization, bracket
// stripping and extraction, then reserved-word segmentation.
func (c *Classifier) variants(text string) textVariants {
	cleaned := strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	v := textVariants{
		original:   text,
		cleaned:    cleaned,
		noBrackets: strings.TrimSpace(bracketRE.ReplaceAllString(cleaned, "")),
		processed:  c.segmenter.Segment(cleaned),
	}
	if m := bracketContentRE.FindStringSubmatch(cleaned); m != nil {
		v.bracketContent = strings.TrimSpace(m[1])
	}

	joinedTokens := v.processed.Joined()
	joinedReserved := joinNonEmpty(v.processed.ReservedWords)

	v.keywordText = strings.ToLower(joinAll(
		v.cleaned, v.noBrackets, v.bracketContent, joinedTokens, joinedReserved,
	))
	v.ruleText = strings.ToLower(joinAll(v.cleaned, v.noBrackets, v.bracketContent))
	v.patternTexts = dropEmpty([]string{
		v.cleaned, v.noBrackets, v.bracketContent, joinedReserved, joinedTokens,
	})
	v.combined = strings.TrimSpace(joinAll(v.cleaned, v.noBrackets, v.bracketContent, joinedTokens))
	return v
}

// score computes the four sub-scores, combines them with the configured
// weights and applies the category's boost/exclude rules.
func (c *Classifier) score(v textVariants, cp *compiledProfile, similarity float64) ScoreBreakdown {
	b := ScoreBreakdown{
		Reserved:   c.reservedScore(v, cp),
		Keyword:    c.keywordScore(v, cp),
		Pattern:    c.patternScore(v, cp),
		Similarity: similarity,
	}
	raw := b.Reserved*c.weights.Reserved +
		b.Keyword*c.weights.Keyword +
		b.Pattern*c.weights.Pattern +
		b.Similarity*c.weights.Similarity
	b.Combined = c.adjust(v, cp, raw)
	return b
}

// reservedScore checks every matched reserved phrase against the category's
// keyword tiers. A phrase that overlaps a strong keyword contributes more
// than one overlapping a medium or weak keyword; the total is normalized by
// the number of reserved phrases and capped at 1 so long inputs gain no
// inherent edge.
func (c *Classifier) reservedScore(v textVariants, cp *compiledProfile) float64 {
	reserved := v.processed.ReservedWords
	if len(reserved) == 0 {
		return 0
	}

	total := 0.0
	for _, rw := range reserved {
		switch {
		case tierMatches(rw, cp.Keywords.Strong):
			total += profile.ReservedStrong
		case tierMatches(rw, cp.Keywords.Medium):
			total += profile.ReservedMedium
		case tierMatches(rw, cp.Keywords.Weak):
			total += profile.ReservedWeak
		}
	}

	score := total / float64(len(reserved))
	if score > 1 {
		score = 1
	}
	return score
}

// tierMatches reports whether a reserved phrase overlaps any tier keyword,
// in either containment direction, case-insensitively.
func tierMatches(reserved string, keywords []string) bool {
	rw := strings.ToLower(reserved)
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		if strings.Contains(rw, k) || strings.Contains(k, rw) {
			return true
		}
	}
	return false
}

// keywordScore sums tier weights for keywords contained in the combined
// text and normalizes by the maximum attainable sum, keeping the score in
// [0,1] regardless of how long the category's lists are.
func (c *Classifier) keywordScore(v textVariants, cp *compiledProfile) float64 {
	max := cp.Keywords.MaxScore()
	if max == 0 {
		return 0
	}

	score := 0.0
	for _, kw := range cp.Keywords.Strong {
		if strings.Contains(v.keywordText, strings.ToLower(kw)) {
			score += profile.StrongWeight
		}
	}
	for _, kw := range cp.Keywords.Medium {
		if strings.Contains(v.keywordText, strings.ToLower(kw)) {
			score += profile.MediumWeight
		}
	}
	for _, kw := range cp.Keywords.Weak {
		if strings.Contains(v.keywordText, strings.ToLower(kw)) {
			score += profile.WeakWeight
		}
	}
	return score / max
}

// patternScore is the fraction of the category's patterns that match any
// text variant. Each pattern counts at most once however many variants it
// matches.
func (c *Classifier) patternScore(v textVariants, cp *compiledProfile) float64 {
	if len(cp.patterns) == 0 {
		return 0
	}

	matched := 0
	for _, re := range cp.patterns {
		for _, text := range v.patternTexts {
			if re.MatchString(text) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(cp.patterns))
}

func joinAll(parts ...string) string {
	return strings.Join(dropEmpty(parts), " ")
}

func joinNonEmpty(parts []string) string {
	return strings.Join(dropEmpty(parts), " ")
}

func dropEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
