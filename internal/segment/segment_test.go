package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/assetclass/internal/lexicon"
)

// charTokenizer splits the remainder into single runes. Using it in tests
// makes any leakage of a reserved phrase into the generic path obvious: the
// phrase would come back as single characters.
var charTokenizer = TokenizerFunc(func(text string) []string {
	var out []string
	for _, field := range strings.Fields(text) {
		for _, r := range field {
			out = append(out, string(r))
		}
	}
	return out
})

// fieldTokenizer splits on whitespace only.
var fieldTokenizer = TokenizerFunc(strings.Fields)

func testLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	return lexicon.New([]lexicon.Entry{
		{Phrase: "防火牆設備", Decomposition: []string{"防火牆", "設備"}},
		{Phrase: "防火牆"},
		{Phrase: "設備"},
		{Phrase: "資料庫管理系統", Decomposition: []string{"資料庫", "管理系統"}},
		{Phrase: "資料庫"},
		{Phrase: "管理系統"},
	})
}

func TestSegmentLongestMatchWins(t *testing.T) {
	s := New(testLexicon(t), charTokenizer)

	p := s.Segment("防火牆設備")

	// The five-rune phrase must win over its substrings; neither 防火牆 nor
	// 設備 may re-match inside the consumed span.
	assert.Equal(t, []string{"防火牆設備"}, p.ReservedWords)
	assert.Empty(t, p.RegularWords)
	assert.Equal(t, []string{"防火牆", "設備"}, p.Expanded)
	assert.Equal(t, []string{"防火牆設備"}, p.AllTokens)
}

func TestSegmentCompoundSystemPhrase(t *testing.T) {
	s := New(testLexicon(t), charTokenizer)

	p := s.Segment("資料庫管理系統")

	assert.Equal(t, []string{"資料庫管理系統"}, p.ReservedWords)
	// Never split into single characters.
	for _, tok := range p.AllTokens {
		assert.Greater(t, len([]rune(tok)), 1)
	}
}

func TestSegmentReservedPlusRemainder(t *testing.T) {
	s := New(testLexicon(t), fieldTokenizer)

	p := s.Segment("MySQL 資料庫")

	assert.Equal(t, []string{"資料庫"}, p.ReservedWords)
	assert.Equal(t, []string{"MySQL"}, p.RegularWords)
	assert.Equal(t, []string{"資料庫", "MySQL"}, p.AllTokens)
}

func TestSegmentMultipleOccurrences(t *testing.T) {
	s := New(testLexicon(t), fieldTokenizer)

	// Both occurrences are consumed by one extraction; the phrase is
	// recorded once and nothing leaks to the generic tokenizer.
	p := s.Segment("防火牆與防火牆")

	assert.Equal(t, []string{"防火牆"}, p.ReservedWords)
	assert.Empty(t, p.RegularWords)
}

func TestSegmentEmptyInput(t *testing.T) {
	s := New(testLexicon(t), fieldTokenizer)

	p := s.Segment("")

	assert.Equal(t, "", p.Original)
	assert.Empty(t, p.ReservedWords)
	assert.Empty(t, p.AllTokens)
}

func TestSegmentNoTokenFallback(t *testing.T) {
	s := New(testLexicon(t), fieldTokenizer)

	// "的" is a stopword and nothing else survives filtering; the input must
	// not be silently dropped.
	p := s.Segment("的")

	require.Equal(t, []string{"的"}, p.AllTokens)
	assert.Equal(t, "的", p.Joined())
}

func TestSegmentStopwordAndLengthFiltering(t *testing.T) {
	s := New(testLexicon(t), fieldTokenizer)

	p := s.Segment("主機 與 的 A 牆 7")

	// 與/的 are stopwords; 牆 is a single non-alphanumeric rune; A and 7 are
	// single alphanumerics and stay.
	assert.Equal(t, []string{"主機", "A", "7"}, p.RegularWords)
}

func TestSegmentCharacterSupersetInvariant(t *testing.T) {
	s := New(testLexicon(t), fieldTokenizer)

	inputs := []string{
		"防火牆設備",
		"資料庫管理系統",
		"MySQL 資料庫",
		"防火牆 設備 清單",
	}

	for _, input := range inputs {
		p := s.Segment(input)
		got := map[rune]int{}
		for _, tok := range p.AllTokens {
			for _, r := range tok {
				got[r]++
			}
		}
		stripped := strings.ReplaceAll(input, " ", "")
		for _, r := range stripped {
			assert.Positive(t, got[r], "rune %q of %q missing from tokens", r, input)
		}
	}
}

func TestSegmentCustomStopwords(t *testing.T) {
	s := New(testLexicon(t), fieldTokenizer, WithStopwords([]string{"主機"}))

	p := s.Segment("主機 清單")

	assert.Equal(t, []string{"清單"}, p.RegularWords)
}

func TestSegmentIsDeterministic(t *testing.T) {
	s := New(testLexicon(t), charTokenizer)

	first := s.Segment("防火牆設備與資料庫管理系統")
	second := s.Segment("防火牆設備與資料庫管理系統")

	assert.Equal(t, first, second)
}
