package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// MaxKeywords is the number of keywords reported per page
const MaxKeywords = 10

var (
	wordPattern     = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

const vowels = "aeiouy"

// stopwords are skipped during keyword extraction
var stopwords = toSet([]string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're", "you've", "you'll", "you'd", "your",
	"yours", "yourself", "yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers", "herself", "it",
	"it's", "its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"having", "do", "does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "against", "between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "don",
	"don't", "should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
	"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn",
	"isn't", "ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't",
	"wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
})

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether word is in the fixed English stopword list
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Tokenize returns the runs of word characters in text
func Tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// NormalizeWhitespace trims text and collapses every whitespace run to one space
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CountSentences splits normalized text on runs of terminal punctuation.
// Empty segments count, and the result is never below 1.
func CountSentences(normalized string) int {
	n := len(sentencePattern.Split(normalized, -1))
	if n < 1 {
		return 1
	}
	return n
}

// CountSyllables estimates syllables by counting vowel clusters.
// A trailing "e" is silent unless the word ends in "le".
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

// AnalyzeText computes the readability inputs for body text
func AnalyzeText(bodyText string) TextStats {
	words := Tokenize(NormalizeWhitespace(bodyText))

	stats := TextStats{
		Words:     len(words),
		Sentences: CountSentences(NormalizeWhitespace(bodyText)),
	}
	if stats.Words < 1 {
		stats.Words = 1
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		stats.Syllables += CountSyllables(w)
		unique[w] = struct{}{}
	}
	stats.Unique = len(unique)
	return stats
}

// Flesch returns the Flesch reading-ease score
func (s TextStats) Flesch() float64 {
	asl := float64(s.Words) / float64(s.Sentences)
	asw := float64(s.Syllables) / float64(s.Words)
	return 206.835 - 1.015*asl - 84.6*asw
}

// Diversity returns the share of distinct words in the text
func (s TextStats) Diversity() float64 {
	return float64(s.Unique) / float64(s.Words)
}

// ExtractKeywords returns up to MaxKeywords of the most frequent
// alphabetic non-stopword tokens, ties kept in first-seen order.
func ExtractKeywords(bodyText string) []KeywordEntry {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range Tokenize(strings.ToLower(bodyText)) {
		if IsStopword(w) || !isAlpha(w) {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	keywords := make([]KeywordEntry, 0, len(order))
	for _, w := range order {
		keywords = append(keywords, KeywordEntry{Word: w, Frequency: counts[w]})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Frequency > keywords[j].Frequency
	})

	if len(keywords) > MaxKeywords {
		keywords = keywords[:MaxKeywords]
	}
	return keywords
}

func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
