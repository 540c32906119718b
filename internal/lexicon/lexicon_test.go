package lexicon

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantLen int
	}{
		{
			name:    "empty input",
			entries: nil,
			wantLen: 0,
		},
		{
			name: "duplicate phrase keeps first",
			entries: []Entry{
				{Phrase: "防火牆", Decomposition: []string{"防火牆"}},
				{Phrase: "防火牆", Decomposition: []string{"防火", "牆"}},
			},
			wantLen: 1,
		},
		{
			name: "empty phrase skipped",
			entries: []Entry{
				{Phrase: ""},
				{Phrase: "資料庫"},
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.entries)
			assert.Equal(t, tt.wantLen, l.Len())
		})
	}
}

func TestNewDuplicateKeepsFirstDecomposition(t *testing.T) {
	l := New([]Entry{
		{Phrase: "防火牆", Decomposition: []string{"防火牆"}},
		{Phrase: "防火牆", Decomposition: []string{"防火", "牆"}},
	})
	assert.Equal(t, []string{"防火牆"}, l.Decomposition("防火牆"))
}

func TestDecompositionDefaultsToPhrase(t *testing.T) {
	l := New([]Entry{{Phrase: "作業系統"}})
	assert.Equal(t, []string{"作業系統"}, l.Decomposition("作業系統"))
	assert.Nil(t, l.Decomposition("不存在"))
}

func TestSortedLongestFirst(t *testing.T) {
	l := New([]Entry{
		{Phrase: "設備"},
		{Phrase: "防火牆設備"},
		{Phrase: "防火牆"},
	})

	sorted := l.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "防火牆設備", sorted[0].Phrase)

	// Rune counts must be non-increasing.
	for i := 1; i < len(sorted); i++ {
		prev := utf8.RuneCountInString(sorted[i-1].Phrase)
		cur := utf8.RuneCountInString(sorted[i].Phrase)
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestSortedEqualLengthLexicographic(t *testing.T) {
	l := New([]Entry{
		{Phrase: "網路設備"},
		{Phrase: "儲存設備"},
	})
	sorted := l.Sorted()
	require.Len(t, sorted, 2)
	assert.True(t, sorted[0].Phrase < sorted[1].Phrase)
}

func TestMergeOverrides(t *testing.T) {
	base := New([]Entry{{Phrase: "防火牆", Decomposition: []string{"防火牆"}}})
	merged := base.Merge([]Entry{
		{Phrase: "防火牆", Decomposition: []string{"防火", "牆"}},
		{Phrase: "入侵偵測系統", Decomposition: []string{"入侵偵測", "系統"}},
	})

	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, []string{"防火", "牆"}, merged.Decomposition("防火牆"))
	assert.True(t, merged.Contains("入侵偵測系統"))
	// Receiver untouched.
	assert.Equal(t, []string{"防火牆"}, base.Decomposition("防火牆"))
}

func TestDefaultLexicon(t *testing.T) {
	l := Default()
	require.NotZero(t, l.Len())

	assert.Equal(t, []string{"防火牆", "設備"}, l.Decomposition("防火牆設備"))
	assert.Equal(t, []string{"資料庫", "管理系統"}, l.Decomposition("資料庫管理系統"))
	assert.True(t, l.Contains("作業系統"))

	// Longest-first ordering puts the seven-rune phrase ahead of its parts.
	sorted := l.Sorted()
	assert.Equal(t, "可攜式儲存媒體", sorted[0].Phrase)
}
