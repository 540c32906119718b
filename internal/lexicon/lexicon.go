// Package lexicon holds the reserved-phrase lexicon: multi-character domain
// terms that must survive segmentation as single units, together with their
// semantic decomposition (e.g. "防火牆設備" → "防火牆" + "設備").
package lexicon

import (
	"sort"
	"unicode/utf8"
)

// Entry maps a reserved phrase to its decomposition tokens.
// A phrase that should not decompose lists itself as its only token.
type Entry struct {
	Phrase        string   `koanf:"phrase" yaml:"phrase"`
	Decomposition []string `koanf:"decomposition" yaml:"decomposition"`
}

// Lexicon is an immutable set of reserved-phrase entries.
// Phrases are unique; when the same phrase is registered twice the first
// registration wins.
type Lexicon struct {
	entries  []Entry
	byPhrase map[string]Entry
}

// New builds a lexicon from entries. Construction never fails: duplicate
// phrases are dropped (first wins) and entries with an empty phrase are
// skipped. Overlap between different phrases is intentionally not validated;
// the segmenter resolves overlaps by longest-match.
func New(entries []Entry) *Lexicon {
	l := &Lexicon{
		byPhrase: make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		if e.Phrase == "" {
			continue
		}
		if _, ok := l.byPhrase[e.Phrase]; ok {
			continue
		}
		if len(e.Decomposition) == 0 {
			e.Decomposition = []string{e.Phrase}
		}
		l.byPhrase[e.Phrase] = e
		l.entries = append(l.entries, e)
	}
	return l
}

// Merge returns a new lexicon containing the receiver's entries plus extra
// ones. Extra entries override same-phrase entries from the receiver.
func (l *Lexicon) Merge(extra []Entry) *Lexicon {
	merged := make([]Entry, 0, len(extra)+len(l.entries))
	merged = append(merged, extra...)
	merged = append(merged, l.entries...)
	return New(merged)
}

// Len reports the number of entries.
func (l *Lexicon) Len() int { return len(l.entries) }

// Decomposition returns the decomposition tokens for a phrase, or nil when
// the phrase is not in the lexicon.
func (l *Lexicon) Decomposition(phrase string) []string {
	e, ok := l.byPhrase[phrase]
	if !ok {
		return nil
	}
	return e.Decomposition
}

// Contains reports whether the phrase is a reserved phrase.
func (l *Lexicon) Contains(phrase string) bool {
	_, ok := l.byPhrase[phrase]
	return ok
}

// Sorted returns the entries ordered longest-phrase-first (rune count), so a
// greedy matcher prefers "防火牆設備" over "防火牆". Equal-length phrases are
// ordered lexicographically to keep extraction order stable across runs.
func (l *Lexicon) Sorted() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i].Phrase), utf8.RuneCountInString(out[j].Phrase)
		if li != lj {
			return li > lj
		}
		return out[i].Phrase < out[j].Phrase
	})
	return out
}

// Phrases returns all phrases in registration order.
func (l *Lexicon) Phrases() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Phrase
	}
	return out
}
