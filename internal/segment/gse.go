package segment

import (
	"fmt"

	"github.com/go-ego/gse"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/assetclass/internal/lexicon"
)

// lexiconTokenFreq is the dictionary frequency used when registering lexicon
// phrases with gse. High enough that the statistical path prefers the phrase
// over splitting it, even when the longest-match pre-pass is bypassed.
const lexiconTokenFreq = 10000

// GseTokenizer adapts the gse statistical Chinese segmenter to the Tokenizer
// interface. The gse dictionary is owned by this instance; lexicon phrases
// are registered into it as a soft hint, never into any global state.
type GseTokenizer struct {
	seg gse.Segmenter
}

// NewGseTokenizer loads the embedded gse dictionary and registers every
// lexicon phrase into it. lex may be nil to skip registration.
func NewGseTokenizer(lex *lexicon.Lexicon, logger *zap.Logger) (*GseTokenizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var seg gse.Segmenter
	if err := seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("loading gse dictionary: %w", err)
	}

	registered := 0
	if lex != nil {
		for _, phrase := range lex.Phrases() {
			if err := seg.AddToken(phrase, lexiconTokenFreq); err != nil {
				logger.Warn("failed to register lexicon phrase with gse",
					zap.String("phrase", phrase),
					zap.Error(err))
				continue
			}
			registered++
		}
	}

	logger.Debug("gse tokenizer ready", zap.Int("lexicon_phrases", registered))
	return &GseTokenizer{seg: seg}, nil
}

// Tokenize cuts text into words using the HMM path for unknown sequences.
func (t *GseTokenizer) Tokenize(text string) []string {
	return t.seg.Cut(text, true)
}

var _ Tokenizer = (*GseTokenizer)(nil)
