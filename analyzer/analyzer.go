package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultUserAgent is sent with every page request unless overridden
const DefaultUserAgent = "SEOAnalyzer/1.0"

// Analyzer scores a single web page for SEO, AEO and AIO
type Analyzer struct {
	client    *http.Client
	userAgent string
	logger    *zap.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithHTTPClient replaces the default client. The client's own timeout is
// kept as is; callers supplying one are responsible for bounding it.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Analyzer) {
		a.client = client
	}
}

// WithUserAgent sets the User-Agent header used for fetching
func WithUserAgent(userAgent string) Option {
	return func(a *Analyzer) {
		if userAgent != "" {
			a.userAgent = userAgent
		}
	}
}

// WithLogger attaches a logger
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates a new Analyzer instance
func New(opts ...Option) *Analyzer {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	a := &Analyzer{
		client: &http.Client{
			Timeout:   FetchTimeout,
			Transport: transport,
		},
		userAgent: DefaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze fetches url and runs the full pipeline: fetch, extract, normalize, score.
// It never returns nil; failures are reported through Result.Outcome and the
// single bad SEO finding that describes them.
func (a *Analyzer) Analyze(ctx context.Context, url string) *Result {
	logger := a.logger.With(zap.String("url", url))

	p, err := a.fetch(ctx, url)
	if err != nil {
		logger.Warn("Fetch failed", zap.Error(err))
		return failedResult(url, OutcomeFetchFailed, fmt.Sprintf("Error accessing URL: %v", err), err)
	}

	result, err := a.analyzePage(p)
	if err != nil {
		logger.Error("Analysis failed", zap.Error(err))
		return failedResult(url, OutcomeFailed, fmt.Sprintf("An unexpected error occurred: %v", err), err)
	}
	result.URL = url

	logger.Debug("Analysis complete",
		zap.Int("status", p.statusCode),
		zap.Int("findings", len(result.Findings)),
		zap.Int("keywords", len(result.Keywords)),
		zap.Duration("fetch_time", p.elapsed))

	return result
}

// AnalyzeHTML scores an already fetched document
func (a *Analyzer) AnalyzeHTML(url string, body []byte) *Result {
	result, err := a.analyzePage(&page{body: body, statusCode: http.StatusOK})
	if err != nil {
		return failedResult(url, OutcomeFailed, fmt.Sprintf("An unexpected error occurred: %v", err), err)
	}
	result.URL = url
	return result
}

// analyzePage runs every stage after the fetch. A panic in any stage is
// turned into an error so nothing computed up to that point escapes.
func (a *Analyzer) analyzePage(p *page) (result *Result, err error) {
	stage := "extract"
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &AnalysisError{Stage: stage, Err: fmt.Errorf("%v", r)}
		}
	}()

	doc, err := Extract(p.body)
	if err != nil {
		return nil, &AnalysisError{Stage: stage, Err: err}
	}

	stage = "normalize"
	text := AnalyzeText(doc.BodyText)
	keywords := ExtractKeywords(doc.BodyText)

	stage = "score"
	findings := Score(doc, text)

	return &Result{
		Outcome:  OutcomeSuccess,
		Findings: findings,
		Keywords: keywords,
		Metrics: &Metrics{
			StatusCode:    p.statusCode,
			ContentLength: len(p.body),
			FetchTime:     p.elapsed,
			Headings:      len(doc.Headings),
			Images:        len(doc.Images),
			Lists:         doc.Lists,
			Text:          text,
			Flesch:        text.Flesch(),
			Diversity:     text.Diversity(),
		},
	}, nil
}

func failedResult(url string, outcome Outcome, message string, err error) *Result {
	return &Result{
		URL:     url,
		Outcome: outcome,
		Findings: []Finding{{
			Axis:     AxisSEO,
			Polarity: Bad,
			Message:  message,
		}},
		Keywords: []KeywordEntry{},
		Err:      err,
	}
}
