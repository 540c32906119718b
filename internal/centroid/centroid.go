// Package centroid stores one mean TF-IDF vector per asset category in an
// embedded chromem-go collection and answers cosine-similarity queries
// against every centroid at once.
package centroid

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	chromem "github.com/philippgille/chromem-go"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/assetclass/internal/vectorize"
)

const collectionName = "category_centroids"

var (
	// ErrNotBuilt is returned by Similarities before Build has run.
	ErrNotBuilt = errors.New("centroid store has not been built")
	// ErrNoCentroids is returned by Build when no category yields a vector.
	ErrNoCentroids = errors.New("no category produced a centroid")
)

// Store holds per-category centroid vectors. Build once at classifier
// construction; Similarities is read-only afterwards and safe for concurrent
// callers.
type Store struct {
	vectorizer *vectorize.Vectorizer
	db         *chromem.DB
	collection *chromem.Collection
	categories []string
	logger     *zap.Logger
}

// NewStore creates an empty in-memory store over the given vectorizer.
// The vectorizer must already be fitted, or be fitted before Build is called.
func NewStore(vectorizer *vectorize.Vectorizer, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		vectorizer: vectorizer,
		db:         chromem.NewDB(),
		logger:     logger,
	}
}

// embeddingFunc exposes the TF-IDF transform to chromem for query texts.
func (s *Store) embeddingFunc() chromem.EmbeddingFunc {
	return func(_ context.Context, text string) ([]float32, error) {
		return s.vectorizer.Transform(text)
	}
}

// Build computes the mean TF-IDF vector of every category's texts and stores
// each centroid as one collection document. Texts that have no vocabulary
// overlap are skipped; a category where every text is skipped gets no
// centroid and always scores similarity zero.
func (s *Store) Build(ctx context.Context, textsByCategory map[string][]string) error {
	collection, err := s.db.CreateCollection(collectionName, nil, s.embeddingFunc())
	if err != nil {
		return fmt.Errorf("creating centroid collection: %w", err)
	}

	// Deterministic insertion order.
	categories := make([]string, 0, len(textsByCategory))
	for category := range textsByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var docs []chromem.Document
	var built []string
	for _, category := range categories {
		vec, count := s.meanVector(textsByCategory[category])
		if count == 0 {
			s.logger.Warn("category has no vectorizable training text",
				zap.String("category", category))
			continue
		}
		docs = append(docs, chromem.Document{
			ID:        category,
			Content:   category,
			Embedding: vec,
			Metadata:  map[string]string{"texts": fmt.Sprintf("%d", count)},
		})
		built = append(built, category)
	}

	if len(docs) == 0 {
		return ErrNoCentroids
	}

	if err := collection.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("adding centroid documents: %w", err)
	}

	s.collection = collection
	s.categories = built
	s.logger.Debug("centroid store built",
		zap.Int("categories", len(built)),
		zap.Int("dimension", s.vectorizer.Dimension()))
	return nil
}

// meanVector averages the TF-IDF vectors of texts, L2-normalizes the result
// and reports how many texts contributed.
func (s *Store) meanVector(texts []string) ([]float32, int) {
	var sum []float64
	count := 0
	for _, text := range texts {
		vec, err := s.vectorizer.Transform(text)
		if err != nil {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(vec))
		}
		for i, x := range vec {
			sum[i] += float64(x)
		}
		count++
	}
	if count == 0 {
		return nil, 0
	}

	var norm float64
	for _, x := range sum {
		norm += x * x
	}
	if norm == 0 {
		return nil, 0
	}
	norm = 1 / math.Sqrt(norm)

	out := make([]float32, len(sum))
	for i, x := range sum {
		out[i] = float32(x * norm)
	}
	return out, count
}

// Categories returns the categories that have a centroid, sorted.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Similarities returns the cosine similarity of text against every category
// centroid. A text with no vocabulary overlap scores zero everywhere rather
// than failing the classification.
func (s *Store) Similarities(ctx context.Context, text string) (map[string]float64, error) {
	if s.collection == nil {
		return nil, ErrNotBuilt
	}

	sims := make(map[string]float64, len(s.categories))
	for _, category := range s.categories {
		sims[category] = 0
	}

	if _, err := s.vectorizer.Transform(text); err != nil {
		s.logger.Debug("query text not vectorizable, similarity zero",
			zap.String("text", text),
			zap.Error(err))
		return sims, nil
	}

	results, err := s.collection.Query(ctx, text, s.collection.Count(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying centroids: %w", err)
	}
	for _, r := range results {
		sims[r.ID] = float64(r.Similarity)
	}
	return sims, nil
}
