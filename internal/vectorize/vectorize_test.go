package vectorize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func TestTransformBeforeFit(t *testing.T) {
	v := New(Options{})
	_, err := v.Transform("防火牆")
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestFitEmptyCorpus(t *testing.T) {
	v := New(Options{})
	assert.ErrorIs(t, v.Fit(nil), ErrEmptyCorpus)
	assert.ErrorIs(t, v.Fit([]string{"", "   "}), ErrEmptyCorpus)
}

func TestTransformVectorIsNormalized(t *testing.T) {
	v := New(Options{})
	require.NoError(t, v.Fit([]string{"防火牆設備", "資料庫管理系統", "網路服務"}))

	vec, err := v.Transform("防火牆設備")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, dot(vec, vec), 1e-6)
	assert.Len(t, vec, v.Dimension())
}

func TestSelfSimilarityIsMaximal(t *testing.T) {
	corpus := []string{"防火牆設備", "資料庫管理系統", "網路服務", "內部人員"}
	v := New(Options{})
	require.NoError(t, v.Fit(corpus))

	query, err := v.Transform("防火牆設備")
	require.NoError(t, err)

	self := 0.0
	best := 0.0
	for _, doc := range corpus {
		vec, err := v.Transform(doc)
		require.NoError(t, err)
		sim := dot(query, vec)
		if doc == "防火牆設備" {
			self = sim
		}
		if sim > best {
			best = sim
		}
	}

	assert.InDelta(t, 1.0, self, 1e-6)
	assert.Equal(t, best, self)
}

func TestTransformNoOverlap(t *testing.T) {
	v := New(Options{})
	require.NoError(t, v.Fit([]string{"防火牆設備"}))

	_, err := v.Transform("totally unrelated")
	assert.ErrorIs(t, err, ErrNoOverlap)
}

func TestMaxFeaturesCapsVocabulary(t *testing.T) {
	v := New(Options{MaxFeatures: 5})
	require.NoError(t, v.Fit([]string{"防火牆設備", "資料庫管理系統", "網路服務設備"}))

	assert.LessOrEqual(t, v.Dimension(), 5)
}

func TestRelatedTextsMoreSimilarThanUnrelated(t *testing.T) {
	v := New(Options{})
	require.NoError(t, v.Fit([]string{"防火牆設備", "網路設備", "作業文件", "電子紀錄"}))

	query, err := v.Transform("儲存設備")
	require.NoError(t, err)

	device, err := v.Transform("網路設備")
	require.NoError(t, err)
	document, err := v.Transform("作業文件")
	require.NoError(t, err)

	assert.Greater(t, dot(query, device), dot(query, document))
}

func TestFitIsDeterministic(t *testing.T) {
	corpus := []string{"防火牆設備", "資料庫管理系統", "網路服務", "內部人員"}

	a := New(Options{})
	require.NoError(t, a.Fit(corpus))
	b := New(Options{})
	require.NoError(t, b.Fit(corpus))

	require.Equal(t, a.Dimension(), b.Dimension())
	va, err := a.Transform("防火牆設備")
	require.NoError(t, err)
	vb, err := b.Transform("防火牆設備")
	require.NoError(t, err)

	for i := range va {
		assert.False(t, math.IsNaN(float64(va[i])))
		assert.Equal(t, va[i], vb[i])
	}
}
