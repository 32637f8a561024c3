package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensity(t *testing.T) {
	words := splitWords("Go go GO, rust rust; the")

	rows, total := Density(words, 1, false)
	assert.Equal(t, 6, total)
	require.Len(t, rows, 3)
	assert.Equal(t, WordCount{Word: "go", Count: 3, Density: 50}, rows[0])
	assert.Equal(t, "rust", rows[1].Word)
	assert.InDelta(t, 33.33, rows[1].Density, 0.01)
	assert.Equal(t, "the", rows[2].Word)

	rows, total = Density(words, 1, true)
	assert.Equal(t, 6, total, "stop words still count toward the total")
	require.Len(t, rows, 2)
	assert.Equal(t, "go", rows[0].Word)

	rows, total = Density(words, 3, false)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "rust", rows[0].Word)
	assert.InDelta(t, 66.67, rows[0].Density, 0.01)
}

func TestDensityTiesAlphabetical(t *testing.T) {
	rows, _ := Density([]string{"pear", "apple", "fig"}, 1, false)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"apple", "fig", "pear"}, []string{rows[0].Word, rows[1].Word, rows[2].Word})
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"don't", "stop", "2024", "quoted"}, splitWords("Don't stop! 2024 'quoted'"))
	assert.Empty(t, splitWords(" ... !!! "))
}

func TestKeywordDensity(t *testing.T) {
	res := KeywordDensity("seo tools seo tips seo", Options{"top": "2"})
	require.True(t, res.OK(), res.Error)
	assert.Contains(t, res.Output, "total words: 5\n")
	assert.Contains(t, res.Output, "unique words: 3\n")
	assert.Contains(t, res.Output, "60.00%")
	assert.NotContains(t, res.Output, "tools", "only the top two rows are printed")

	assert.False(t, KeywordDensity("!!!", Options{}).OK())
	assert.False(t, KeywordDensity("word", Options{"top": "0"}).OK())
}

func TestCountWords(t *testing.T) {
	res := CountWords("Hello world. Second one!\n\nNew para", Options{})
	require.True(t, res.OK())
	assert.Equal(t, "words: 6\ncharacters: 34\ncharacters_no_spaces: 28\nsentences: 3\nparagraphs: 2", res.Output)

	res = CountWords("", Options{})
	assert.Equal(t, "words: 0\ncharacters: 0\ncharacters_no_spaces: 0\nsentences: 0\nparagraphs: 0", res.Output)
}

func TestConvertCase(t *testing.T) {
	tests := []struct {
		mode  string
		input string
		want  string
	}{
		{"", "Hello", "HELLO"},
		{"lower", "HeLLo", "hello"},
		{"title", "hello WORLD  again", "Hello World  Again"},
		{"sentence", "HELLO. world? yes", "Hello. World? Yes"},
	}
	for _, tt := range tests {
		res := ConvertCase(tt.input, Options{"mode": tt.mode})
		assert.Equal(t, tt.want, res.Output, tt.mode)
	}
	assert.Contains(t, ConvertCase("x", Options{"mode": "snake"}).Error, "unknown mode")
}

func TestBase64(t *testing.T) {
	assert.Equal(t, "aGVsbG8gd29ybGQ=", Base64("hello world", Options{}).Output)
	assert.Equal(t, "hello world", Base64(" aGVsbG8gd29ybGQ=\n", Options{"mode": "decode"}).Output)
	assert.Contains(t, Base64("!!", Options{"mode": "decode"}).Error, "invalid base64")
}

func TestURLEncode(t *testing.T) {
	assert.Equal(t, "a+b%26c%3D1", URLEncode("a b&c=1", Options{}).Output)
	assert.Equal(t, "a b&c=1", URLEncode("a+b%26c%3D1", Options{"mode": "decode"}).Output)
	assert.Contains(t, URLEncode("%zz", Options{"mode": "decode"}).Error, "invalid encoding")
}
