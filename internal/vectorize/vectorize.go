// Package vectorize provides a character n-gram TF-IDF vectorizer for short
// Chinese asset names. Character n-grams (2–4 by default) sidestep word
// segmentation entirely for the similarity signal, which keeps the vector
// space robust against tokenizer mistakes on compound terms.
package vectorize

import (
	"errors"
	"math"
	"sort"
	"strings"
)

var (
	// ErrNotFitted is returned by Transform before Fit has been called.
	ErrNotFitted = errors.New("vectorizer has not been fitted")
	// ErrEmptyCorpus is returned by Fit when no document contributes a term.
	ErrEmptyCorpus = errors.New("corpus is empty")
	// ErrNoOverlap is returned by Transform when the text shares no n-gram
	// with the fitted vocabulary. Callers treat this as similarity zero.
	ErrNoOverlap = errors.New("text has no overlap with vocabulary")
)

// Options configures a Vectorizer. Zero values select the defaults.
type Options struct {
	// MinN and MaxN bound the character n-gram lengths. Defaults: 2 and 4.
	MinN int
	MaxN int
	// MaxFeatures caps the vocabulary at the most frequent n-grams across
	// the corpus. Default: 8000.
	MaxFeatures int
}

func (o *Options) applyDefaults() {
	if o.MinN == 0 {
		o.MinN = 2
	}
	if o.MaxN == 0 {
		o.MaxN = 4
	}
	if o.MaxFeatures == 0 {
		o.MaxFeatures = 8000
	}
}

// Vectorizer maps text to L2-normalized TF-IDF vectors over a character
// n-gram vocabulary. Fit once, then Transform any number of times; a fitted
// Vectorizer is immutable and safe for concurrent Transform calls.
type Vectorizer struct {
	opts   Options
	vocab  map[string]int
	idf    []float64
	fitted bool
}

// New creates an unfitted Vectorizer.
func New(opts Options) *Vectorizer {
	opts.applyDefaults()
	return &Vectorizer{opts: opts}
}

// Dimension returns the vocabulary size, zero before Fit.
func (v *Vectorizer) Dimension() int { return len(v.vocab) }

// Fit builds the vocabulary and IDF weights from the corpus. Blank documents
// are ignored; fitting twice replaces the previous state.
func (v *Vectorizer) Fit(corpus []string) error {
	termTotals := make(map[string]int)
	docFreq := make(map[string]int)
	nDocs := 0

	for _, doc := range corpus {
		grams := v.ngrams(doc)
		if len(grams) == 0 {
			continue
		}
		nDocs++
		seen := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			termTotals[g]++
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				docFreq[g]++
			}
		}
	}

	if nDocs == 0 {
		return ErrEmptyCorpus
	}

	// Keep the MaxFeatures most frequent terms; ties break lexicographically
	// so the vocabulary is stable across runs.
	terms := make([]string, 0, len(termTotals))
	for t := range termTotals {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termTotals[terms[i]] != termTotals[terms[j]] {
			return termTotals[terms[i]] > termTotals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.opts.MaxFeatures {
		terms = terms[:v.opts.MaxFeatures]
	}
	sort.Strings(terms)

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1.
		v.idf[i] = math.Log(float64(1+nDocs)/float64(1+docFreq[t])) + 1
	}
	v.fitted = true
	return nil
}

// Transform maps text to an L2-normalized TF-IDF vector in the fitted space.
func (v *Vectorizer) Transform(text string) ([]float32, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}

	counts := make(map[int]int)
	for _, g := range v.ngrams(text) {
		if idx, ok := v.vocab[g]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil, ErrNoOverlap
	}

	vec := make([]float32, len(v.vocab))
	var norm float64
	for idx, tf := range counts {
		w := float64(tf) * v.idf[idx]
		vec[idx] = float32(w)
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for idx := range counts {
		vec[idx] = float32(float64(vec[idx]) / norm)
	}
	return vec, nil
}

// ngrams emits lowercased character n-grams per whitespace-separated word,
// each word padded with a leading and trailing space so n-grams anchor at
// word boundaries. A word shorter than MinN is emitted whole.
func (v *Vectorizer) ngrams(text string) []string {
	var out []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		padded := []rune(" " + word + " ")
		if len(padded) <= v.opts.MinN {
			out = append(out, string(padded))
			continue
		}
		maxN := v.opts.MaxN
		if maxN > len(padded) {
			maxN = len(padded)
		}
		for n := v.opts.MinN; n <= maxN; n++ {
			for i := 0; i+n <= len(padded); i++ {
				out = append(out, string(padded[i:i+n]))
			}
		}
	}
	return out
}
