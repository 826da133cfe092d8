package analyzer

import (
	"strconv"
	"time"
)

// Axis identifies which optimization dimension a finding belongs to
type Axis string

const (
	AxisSEO Axis = "seo"
	AxisAEO Axis = "aeo"
	AxisAIO Axis = "aio"
)

// Axes lists every axis in report order
var Axes = []Axis{AxisSEO, AxisAEO, AxisAIO}

// Label returns the display name of the axis
func (a Axis) Label() string {
	switch a {
	case AxisSEO:
		return "SEO"
	case AxisAEO:
		return "AEO"
	case AxisAIO:
		return "AIO"
	}
	return string(a)
}

// Polarity marks a finding as a strength or a problem
type Polarity string

const (
	Good Polarity = "good"
	Bad  Polarity = "bad"
)

// Finding is a single good/bad observation about the page
type Finding struct {
	Axis     Axis     `json:"axis"`
	Polarity Polarity `json:"polarity"`
	Message  string   `json:"message"`
}

// KeywordEntry is a keyword and how often it occurs in the body text
type KeywordEntry struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// Heading is an h1-h6 element in document order
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Tag returns the element name of the heading, e.g. "h2"
func (h Heading) Tag() string {
	return "h" + strconv.Itoa(h.Level)
}

// Image is an <img> element
type Image struct {
	Src        string `json:"src"`
	HasAltText bool   `json:"hasAltText"`
}

// PageDocument holds everything extracted from one fetched page.
// It is built once per analysis and never modified afterwards.
type PageDocument struct {
	Title           string
	MetaDescription string
	Headings        []Heading
	Images          []Image
	Lists           int
	StructuredData  []map[string]any
	BodyText        string
}

// TextStats are the readability inputs derived from the body text
type TextStats struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
	Syllables int `json:"syllables"`
	Unique    int `json:"uniqueWords"`
}

// Metrics are the raw numbers behind the findings
type Metrics struct {
	StatusCode    int           `json:"statusCode"`
	ContentLength int           `json:"contentLength"`
	FetchTime     time.Duration `json:"fetchTimeNs"`
	Headings      int           `json:"headings"`
	Images        int           `json:"images"`
	Lists         int           `json:"lists"`
	Text          TextStats     `json:"text"`
	Flesch        float64       `json:"flesch"`
	Diversity     float64       `json:"diversity"`
}

// Outcome describes how far an analysis got
type Outcome string

const (
	// OutcomeSuccess means every stage ran and all findings are present
	OutcomeSuccess Outcome = "success"
	// OutcomeFetchFailed means the page could not be retrieved
	OutcomeFetchFailed Outcome = "fetch_failed"
	// OutcomeFailed means an unexpected error aborted the run.
	// Anything computed before the failure is discarded.
	OutcomeFailed Outcome = "failed"
)

// Result is the complete analysis of one URL
type Result struct {
	URL      string         `json:"url"`
	Outcome  Outcome        `json:"outcome"`
	Findings []Finding      `json:"findings"`
	Keywords []KeywordEntry `json:"keywords"`
	Metrics  *Metrics       `json:"metrics,omitempty"`
	Err      error          `json:"-"`
}

// Messages returns the finding messages for one axis and polarity in evaluation order
func (r *Result) Messages(axis Axis, polarity Polarity) []string {
	messages := make([]string, 0)
	for _, f := range r.Findings {
		if f.Axis == axis && f.Polarity == polarity {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// Good returns the good finding messages for an axis
func (r *Result) Good(axis Axis) []string {
	return r.Messages(axis, Good)
}

// Bad returns the bad finding messages for an axis
func (r *Result) Bad(axis Axis) []string {
	return r.Messages(axis, Bad)
}

// Counts tallies good and bad findings per axis
type Counts struct {
	Good map[Axis]int
	Bad  map[Axis]int
}

// Counts returns the number of good and bad findings for every axis
func (r *Result) Counts() Counts {
	c := Counts{
		Good: make(map[Axis]int, len(Axes)),
		Bad:  make(map[Axis]int, len(Axes)),
	}
	for _, f := range r.Findings {
		if f.Polarity == Good {
			c.Good[f.Axis]++
		} else {
			c.Bad[f.Axis]++
		}
	}
	return c
}
