// Package classifier implements the compound-term-aware asset-name
// classifier: reserved-phrase segmentation, tiered keyword and pattern
// scoring, TF-IDF centroid similarity and post-hoc boost/exclude rules,
// combined into one score per category with a deterministic argmax.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/assetclass/internal/centroid"
	"github.com/fyrsmithlabs/assetclass/internal/lexicon"
	"github.com/fyrsmithlabs/assetclass/internal/profile"
	"github.com/fyrsmithlabs/assetclass/internal/segment"
	"github.com/fyrsmithlabs/assetclass/internal/traindata"
	"github.com/fyrsmithlabs/assetclass/internal/vectorize"
)

// ErrNoTrainingData is returned by New when no rows are supplied. The
// classifier cannot build category centroids from nothing.
var ErrNoTrainingData = errors.New("no training data")

// ScoreBreakdown carries the four raw sub-scores of one (input, category)
// pair and the combined weighted score after rule adjustment. Reserved and
// Keyword are normalized to [0,1]; Combined is a relative score, not a
// probability, and rule multipliers can push it past 1.
type ScoreBreakdown struct {
	Reserved   float64 `json:"reserved"`
	Keyword    float64 `json:"keyword"`
	Pattern    float64 `json:"pattern"`
	Similarity float64 `json:"similarity"`
	Combined   float64 `json:"combined"`
}

// CategoryScore pairs a category with its breakdown.
type CategoryScore struct {
	Category  string         `json:"category"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Result is the outcome of one classification.
type Result struct {
	Input string `json:"input"`
	// Category is the argmax over adjusted combined scores. Ties resolve to
	// the earlier category in canonical order.
	Category string `json:"category"`
	// Confidence is the winning combined score. It is a relative weighted
	// sum, not a calibrated probability; callers thresholding on it should
	// calibrate against their own data.
	Confidence float64 `json:"confidence"`
	// Breakdown holds every category's sub-scores for explainability.
	Breakdown map[string]ScoreBreakdown `json:"breakdown"`
	// Ranked lists categories by descending combined score.
	Ranked []CategoryScore `json:"ranked"`
	// Processed exposes how the input was segmented.
	Processed segment.ProcessedText `json:"processed"`
}

// Config assembles a Classifier. Rows is the only required field.
type Config struct {
	// Rows is the labeled training set.
	Rows []traindata.Row
	// Profiles defaults to profile.Defaults(). Declared order is the
	// canonical scoring and tie-break order.
	Profiles []profile.Profile
	// Lexicon defaults to lexicon.Default().
	Lexicon *lexicon.Lexicon
	// Tokenizer is the generic segmentation collaborator. Defaults to a
	// gse-backed tokenizer seeded with the lexicon.
	Tokenizer segment.Tokenizer
	// Weights defaults to profile.DefaultWeights() when zero.
	Weights profile.Weights
	// Multipliers defaults to profile.DefaultMultipliers() when zero.
	Multipliers profile.Multipliers
	// Vectorizer options for the TF-IDF space.
	Vectorizer vectorize.Options
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// compiledProfile is a Profile with its regex patterns pre-compiled.
type compiledProfile struct {
	profile.Profile
	patterns []*regexp.Regexp
}

// Classifier is immutable after New; Classify calls are pure functions of
// instance state and input, so concurrent use is safe.
type Classifier struct {
	segmenter   *segment.Segmenter
	profiles    map[string]*compiledProfile
	order       []string
	store       *centroid.Store
	weights     profile.Weights
	multipliers profile.Multipliers
	logger      *zap.Logger
}

// New builds a classifier from training rows: segments every row, fits the
// TF-IDF space over all text variants, computes category centroids and
// compiles the scoring profiles. All derived state is built here; Classify
// never mutates it.
func New(ctx context.Context, cfg Config) (*Classifier, error) {
	if len(cfg.Rows) == 0 {
		return nil, ErrNoTrainingData
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lex := cfg.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}

	tokenizer := cfg.Tokenizer
	if tokenizer == nil {
		gseTok, err := segment.NewGseTokenizer(lex, logger)
		if err != nil {
			return nil, fmt.Errorf("building default tokenizer: %w", err)
		}
		tokenizer = gseTok
	}

	profiles := cfg.Profiles
	if len(profiles) == 0 {
		profiles = profile.Defaults()
	}

	weights := cfg.Weights
	if weights == (profile.Weights{}) {
		weights = profile.DefaultWeights()
	}
	multipliers := cfg.Multipliers
	if multipliers == (profile.Multipliers{}) {
		multipliers = profile.DefaultMultipliers()
	}

	c := &Classifier{
		segmenter:   segment.New(lex, tokenizer, segment.WithLogger(logger)),
		profiles:    make(map[string]*compiledProfile, len(profiles)),
		weights:     weights,
		multipliers: multipliers,
		logger:      logger.Named("classifier"),
	}

	// Canonical order: categories in training-data first-appearance order,
	// then profile-only categories in declared order. Argmax ties resolve
	// to the earlier entry.
	declared := make(map[string]profile.Profile, len(profiles))
	for _, p := range profiles {
		if p.Category == "" {
			return nil, profile.ErrEmptyCategory
		}
		declared[p.Category] = p
	}
	for _, category := range traindata.Categories(cfg.Rows) {
		c.order = append(c.order, category)
		c.profiles[category] = c.compile(declared[category], category)
	}
	for _, p := range profiles {
		if _, ok := c.profiles[p.Category]; ok {
			continue
		}
		c.order = append(c.order, p.Category)
		c.profiles[p.Category] = c.compile(p, p.Category)
	}

	if err := c.buildCentroids(ctx, cfg.Rows, cfg.Vectorizer); err != nil {
		return nil, err
	}

	c.logger.Debug("classifier ready",
		zap.Int("rows", len(cfg.Rows)),
		zap.Int("categories", len(c.order)),
		zap.Int("lexicon_phrases", lex.Len()))
	return c, nil
}

// compile pre-compiles a profile's patterns, case-insensitively. Invalid
// patterns are skipped with a warning so one bad entry does not take the
// whole category down.
func (c *Classifier) compile(p profile.Profile, category string) *compiledProfile {
	p.Category = category
	cp := &compiledProfile{Profile: p}
	for _, pat := range p.Patterns {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			c.logger.Warn("skipping invalid pattern",
				zap.String("category", category),
				zap.String("pattern", pat),
				zap.Error(err))
			continue
		}
		cp.patterns = append(cp.patterns, re)
	}
	return cp
}

// buildCentroids fits the TF-IDF space over every row's text variants and
// stores one mean vector per category.
func (c *Classifier) buildCentroids(ctx context.Context, rows []traindata.Row, opts vectorize.Options) error {
	texts := make(map[string][]string)
	var corpus []string
	for _, row := range rows {
		v := c.variants(row.AssetName)
		rowTexts := []string{
			v.cleaned,
			v.noBrackets,
			v.bracketContent,
			v.processed.Joined(),
			joinNonEmpty(v.processed.Expanded),
		}
		for _, t := range rowTexts {
			if t == "" {
				continue
			}
			texts[row.Category] = append(texts[row.Category], t)
			corpus = append(corpus, t)
		}
	}

	vectorizer := vectorize.New(opts)
	if err := vectorizer.Fit(corpus); err != nil {
		return fmt.Errorf("fitting vectorizer: %w", err)
	}

	store := centroid.NewStore(vectorizer, c.logger)
	if err := store.Build(ctx, texts); err != nil {
		return fmt.Errorf("building centroids: %w", err)
	}
	c.store = store
	return nil
}

// Classify scores text against every category and returns the argmax with
// the full per-category breakdown. Calling it twice on the same input
// returns identical output.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	start := time.Now()

	v := c.variants(text)
	sims := c.similarities(ctx, v)

	result := Result{
		Input:     text,
		Breakdown: make(map[string]ScoreBreakdown, len(c.order)),
		Processed: v.processed,
	}

	for _, category := range c.order {
		cp := c.profiles[category]
		breakdown := c.score(v, cp, sims[category])
		result.Breakdown[category] = breakdown
		result.Ranked = append(result.Ranked, CategoryScore{Category: category, Breakdown: breakdown})

		if result.Category == "" || breakdown.Combined > result.Confidence {
			result.Category = category
			result.Confidence = breakdown.Combined
		}
	}

	// Stable sort keeps canonical order among equal scores.
	sort.SliceStable(result.Ranked, func(i, j int) bool {
		return result.Ranked[i].Breakdown.Combined > result.Ranked[j].Breakdown.Combined
	})

	classifyDuration.Observe(time.Since(start).Seconds())
	classificationsTotal.WithLabelValues(result.Category).Inc()

	c.logger.Debug("classified",
		zap.String("input", text),
		zap.String("category", result.Category),
		zap.Float64("confidence", result.Confidence),
		zap.Strings("reserved_words", v.processed.ReservedWords))
	return result
}

// Segment exposes the segmentation step on its own, for inspection without
// scoring.
func (c *Classifier) Segment(text string) segment.ProcessedText {
	return c.variants(text).processed
}

// Categories returns the canonical category order.
func (c *Classifier) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// similarities fetches the per-category cosine similarity, degrading to
// zero everywhere when the store cannot answer.
func (c *Classifier) similarities(ctx context.Context, v textVariants) map[string]float64 {
	sims, err := c.store.Similarities(ctx, v.combined)
	if err != nil {
		similarityFailures.Inc()
		c.logger.Warn("similarity lookup failed, scoring zero",
			zap.String("input", v.original),
			zap.Error(err))
		return map[string]float64{}
	}
	return sims
}
