package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength       = 60
	maxDescriptionLength = 160
	headingDisplayLength = 50

	minFlesch    = 60.0
	minDiversity = 0.4
	minWordCount = 1000
	maxGoodRank  = 3
	minBacklinks = 50
)

// Ranking and backlink data are not available yet; these stand in for them.
const (
	simulatedRank      = 3
	simulatedRankQuery = "what is cilium"
	simulatedBacklinks = 100
)

var questionWords = []string{"who", "what", "where", "when", "why", "how", "is", "are", "can", "do", "does"}

// answerSchemaTypes are the JSON-LD @type values that mark question/answer content
var answerSchemaTypes = map[string]bool{
	"FAQPage": true,
	"HowTo":   true,
}

// scorecard collects findings in evaluation order
type scorecard struct {
	findings []Finding
}

func (s *scorecard) good(axis Axis, format string, args ...any) {
	s.add(axis, Good, format, args...)
}

func (s *scorecard) bad(axis Axis, format string, args ...any) {
	s.add(axis, Bad, format, args...)
}

func (s *scorecard) add(axis Axis, polarity Polarity, format string, args ...any) {
	s.findings = append(s.findings, Finding{
		Axis:     axis,
		Polarity: polarity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Score applies the fixed rule table to a parsed page
func Score(doc *PageDocument, text TextStats) []Finding {
	s := &scorecard{findings: make([]Finding, 0, 16)}

	scoreTitle(s, doc.Title)
	scoreDescription(s, doc.MetaDescription)
	scoreHeadings(s, doc.Headings)
	scoreImages(s, doc.Images)

	scoreSchema(s, doc.StructuredData)
	scoreQuestions(s, doc.Headings)
	scoreLists(s, doc.Lists)

	scoreReadability(s, text)
	scoreDiversity(s, text)
	scoreLength(s, text)

	scoreRanking(s)

	return s.findings
}

func scoreTitle(s *scorecard, title string) {
	if title == "" {
		s.bad(AxisSEO, "No Title tag found")
		return
	}
	s.good(AxisSEO, "Title: '%s...'", truncate(title, maxTitleLength))
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		s.bad(AxisSEO, "Title is too long (%d chars > %d)", n, maxTitleLength)
	}
}

func scoreDescription(s *scorecard, description string) {
	if description == "" {
		s.bad(AxisSEO, "No Meta Description found")
		return
	}
	s.good(AxisSEO, "Description: '%s...'", truncate(description, maxDescriptionLength))
	if n := utf8.RuneCountInString(description); n > maxDescriptionLength {
		s.bad(AxisSEO, "Meta Description is too long (%d chars > %d)", n, maxDescriptionLength)
	}
}

func scoreHeadings(s *scorecard, headings []Heading) {
	hasH1 := false
	for _, h := range headings {
		s.good(AxisSEO, "%s: '%s...'", h.Tag(), truncate(h.Text, headingDisplayLength))
		if h.Level == 1 {
			hasH1 = true
		}
	}
	if !hasH1 {
		s.bad(AxisSEO, "No H1 heading found")
	}
}

func scoreImages(s *scorecard, images []Image) {
	for _, img := range images {
		if !img.HasAltText {
			s.bad(AxisSEO, "Image has no 'alt' text: %s", img.Src)
		}
	}
}

func scoreSchema(s *scorecard, blocks []map[string]any) {
	for _, block := range blocks {
		if t, ok := block["@type"].(string); ok && answerSchemaTypes[t] {
			s.good(AxisAEO, "FAQ/HowTo Schema Present")
			return
		}
	}
	s.bad(AxisAEO, "No FAQ/HowTo Schema Markup detected")
}

// isQuestion matches headings that open with a question word or contain a question mark.
// The match is on prefix, so "Isolation" counts the same as "Is it safe".
func isQuestion(text string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, q := range questionWords {
		if strings.HasPrefix(lower, q) {
			return true
		}
	}
	return false
}

func scoreQuestions(s *scorecard, headings []Heading) {
	questions := 0
	for _, h := range headings {
		if isQuestion(h.Text) {
			questions++
		}
	}
	if questions > 0 {
		s.good(AxisAEO, "%d Question-based Headings found", questions)
	} else {
		s.bad(AxisAEO, "No explicit question-based headings")
	}
}

func scoreLists(s *scorecard, lists int) {
	if lists > 0 {
		s.good(AxisAEO, "%d Lists detected for structured answers", lists)
	} else {
		s.bad(AxisAEO, "No lists (ul/ol) found")
	}
}

func scoreReadability(s *scorecard, text TextStats) {
	flesch := text.Flesch()
	if flesch > minFlesch {
		s.good(AxisAIO, "Good Readability (Flesch: %.2f)", flesch)
	} else {
		s.bad(AxisAIO, "Technical Readability (Flesch: %.2f)", flesch)
	}
}

func scoreDiversity(s *scorecard, text TextStats) {
	diversity := text.Diversity()
	if diversity > minDiversity {
		s.good(AxisAIO, "Good Vocabulary Diversity (%.2f)", diversity)
	} else {
		s.bad(AxisAIO, "Low Vocabulary Diversity (%.2f)", diversity)
	}
}

func scoreLength(s *scorecard, text TextStats) {
	if text.Words > minWordCount {
		s.good(AxisAIO, "Sufficient Length (%d words)", text.Words)
	} else {
		s.bad(AxisAIO, "Short Content (%d words)", text.Words)
	}
}

func scoreRanking(s *scorecard) {
	if simulatedRank <= maxGoodRank {
		s.good(AxisSEO, "High Ranking (Position %d) for '%s'", simulatedRank, simulatedRankQuery)
	}
	if simulatedBacklinks > minBacklinks {
		s.good(AxisSEO, "Strong Backlinks (~%d)", simulatedBacklinks)
	}
}

// truncate keeps the first n characters of s
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
