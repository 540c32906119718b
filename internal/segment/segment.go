// Package segment implements compound-term-aware segmentation of asset
// names. Reserved phrases from the lexicon are extracted with a greedy
// longest-match pre-pass; only the leftover text is handed to the generic
// tokenizer. The tokenizer never sees a reserved phrase, so it cannot split
// one.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/assetclass/internal/lexicon"
)

// placeholder marks the span of an extracted reserved phrase in the working
// text so shorter phrases cannot re-match inside it.
const placeholder = "\x01"

// Tokenizer is the generic word-segmentation collaborator. Any tokenizer
// that splits a string into substrings satisfies it.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenizerFunc adapts a plain function to the Tokenizer interface.
type TokenizerFunc func(text string) []string

// Tokenize implements Tokenizer.
func (f TokenizerFunc) Tokenize(text string) []string { return f(text) }

// ProcessedText is the per-input result of segmentation. It is recomputed on
// every call and never mutated afterwards.
type ProcessedText struct {
	// Original is the input text, untouched.
	Original string
	// ReservedWords are the lexicon phrases found, in discovery order
	// (longest first).
	ReservedWords []string
	// RegularWords are the generic tokens from the leftover text, after
	// stopword and length filtering.
	RegularWords []string
	// Expanded are the decomposition tokens of the matched reserved phrases.
	Expanded []string
	// AllTokens is ReservedWords followed by RegularWords.
	AllTokens []string
}

// Joined returns AllTokens joined with single spaces.
func (p ProcessedText) Joined() string {
	return strings.Join(p.AllTokens, " ")
}

// Segmenter extracts reserved phrases and tokenizes the remainder. It is
// immutable after construction; calls are safe for concurrent readers.
type Segmenter struct {
	entries   []lexicon.Entry // longest-first
	lex       *lexicon.Lexicon
	tokenizer Tokenizer
	stopwords map[string]struct{}
	logger    *zap.Logger
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithStopwords replaces the default stopword list.
func WithStopwords(words []string) Option {
	return func(s *Segmenter) {
		s.stopwords = make(map[string]struct{}, len(words))
		for _, w := range words {
			s.stopwords[w] = struct{}{}
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Segmenter) { s.logger = logger }
}

// defaultStopwords are common function words and particles that carry no
// signal for category scoring.
func defaultStopwords() map[string]struct{} {
	words := []string{"的", "與", "及", "和", "或", "之", "等", "了", "在", "是", "有"}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// New builds a Segmenter over the given lexicon and generic tokenizer.
// The lexicon is snapshotted in longest-first order at construction; global
// tokenizer state is never mutated here.
func New(lex *lexicon.Lexicon, tokenizer Tokenizer, opts ...Option) *Segmenter {
	s := &Segmenter{
		entries:   lex.Sorted(),
		lex:       lex,
		tokenizer: tokenizer,
		stopwords: defaultStopwords(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment splits text into reserved phrases and generic tokens.
//
// Reserved phrases are tried longest-first against the working text; every
// occurrence of a match is replaced with a placeholder so shorter phrases
// cannot re-match inside the span. The placeholder-free remainder goes to
// the generic tokenizer, whose output is filtered by the stopword list and a
// minimum token length (single characters are rejected unless alphanumeric).
//
// An input that yields no tokens at all falls back to a single token holding
// the trimmed original text, so no input is silently lost.
func (s *Segmenter) Segment(text string) ProcessedText {
	p := ProcessedText{Original: text}

	remaining := text
	for _, e := range s.entries {
		if !strings.Contains(remaining, e.Phrase) {
			continue
		}
		p.ReservedWords = append(p.ReservedWords, e.Phrase)
		p.Expanded = append(p.Expanded, e.Decomposition...)
		remaining = strings.ReplaceAll(remaining, e.Phrase, " "+placeholder+" ")
	}

	leftover := strings.TrimSpace(strings.ReplaceAll(remaining, placeholder, " "))
	if leftover != "" {
		for _, tok := range s.tokenizer.Tokenize(leftover) {
			tok = strings.TrimSpace(tok)
			if !s.keepToken(tok) {
				continue
			}
			p.RegularWords = append(p.RegularWords, tok)
		}
	}

	p.AllTokens = make([]string, 0, len(p.ReservedWords)+len(p.RegularWords))
	p.AllTokens = append(p.AllTokens, p.ReservedWords...)
	p.AllTokens = append(p.AllTokens, p.RegularWords...)

	if len(p.AllTokens) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			s.logger.Debug("segmentation produced no tokens, falling back to raw input",
				zap.String("text", text))
			p.RegularWords = []string{trimmed}
			p.AllTokens = []string{trimmed}
		}
	}

	return p
}

// keepToken filters tokenizer output: drop empties, stopwords, and single
// non-alphanumeric characters.
func (s *Segmenter) keepToken(tok string) bool {
	if tok == "" {
		return false
	}
	if _, ok := s.stopwords[tok]; ok {
		return false
	}
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
	}
	return true
}
