package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"apple", 2},
		{"simple", 2},
		{"hello", 2},
		{"the", 1},
		{"Cilium", 2},
		{"rhythm", 1},
		{"queue", 1},
		{"2024", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSyllables(tt.word))
		})
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty", "", 1},
		{"no punctuation", "just some words", 1},
		{"trailing terminator", "Hello world. Bye!", 3},
		{"repeated terminators", "What?! Really... yes", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSentences(tt.text))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a\n\tb   c \n"))
	assert.Equal(t, "", NormalizeWhitespace(" \n "))
}

func TestFleschReadingEase(t *testing.T) {
	// asl = 20, asw = 1.5: 206.835 - 20.3 - 126.9
	stats := TextStats{Words: 100, Sentences: 5, Syllables: 150}
	assert.InDelta(t, 59.635, stats.Flesch(), 1e-9)
}

func TestAnalyzeText(t *testing.T) {
	t.Run("counts words and sentences", func(t *testing.T) {
		stats := AnalyzeText("The cat sat.  The cat ran!")
		assert.Equal(t, 6, stats.Words)
		assert.Equal(t, 3, stats.Sentences)
		assert.Equal(t, 4, stats.Unique)
		assert.Equal(t, 6, stats.Syllables)
	})

	t.Run("empty text never divides by zero", func(t *testing.T) {
		stats := AnalyzeText("")
		assert.Equal(t, 1, stats.Words)
		assert.Equal(t, 1, stats.Sentences)
		assert.Equal(t, 0.0, stats.Diversity())
		assert.InDelta(t, 205.82, stats.Flesch(), 1e-9)
	})

	t.Run("unique words are case sensitive", func(t *testing.T) {
		stats := AnalyzeText("Go go GO")
		assert.Equal(t, 3, stats.Unique)
	})
}

func TestExtractKeywords(t *testing.T) {
	t.Run("orders by frequency then first occurrence", func(t *testing.T) {
		keywords := ExtractKeywords("the cat sat on the mat mat mat")
		assert.Equal(t, []KeywordEntry{
			{Word: "mat", Frequency: 3},
			{Word: "cat", Frequency: 1},
			{Word: "sat", Frequency: 1},
		}, keywords)
	})

	t.Run("skips stopwords and non alphabetic tokens", func(t *testing.T) {
		keywords := ExtractKeywords("The 2024 release of cilium_v2 and Cilium")
		assert.Equal(t, []KeywordEntry{
			{Word: "release", Frequency: 1},
			{Word: "cilium", Frequency: 1},
		}, keywords)
	})

	t.Run("caps at ten entries", func(t *testing.T) {
		keywords := ExtractKeywords("alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima kilo")
		assert.Len(t, keywords, MaxKeywords)
		assert.Equal(t, KeywordEntry{Word: "kilo", Frequency: 2}, keywords[0])
		assert.Equal(t, "alpha", keywords[1].Word)
		assert.Equal(t, "india", keywords[9].Word)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, ExtractKeywords(""))
	})
}

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"the", "on", "is", "what", "wouldn"} {
		assert.True(t, IsStopword(w), w)
	}
	assert.False(t, IsStopword("cilium"))
	assert.False(t, IsStopword("The"), "lookup expects lowercase input")
}
