package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/discoverability/analyzer"
	"github.com/seo-optimizer/discoverability/middleware"
	"github.com/seo-optimizer/discoverability/report"
)

const (
	warnBarChart  = "Could not generate bar chart."
	warnWordCloud = "No valid keywords for word cloud."
	warnKeywords  = "No keywords extracted from the page."
)

type analyzeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// AxisFindings are the good and bad messages for one axis
type AxisFindings struct {
	Good []string `json:"good"`
	Bad  []string `json:"bad"`
}

// AnalyzeResponse is the JSON body returned by POST /api/analyze
type AnalyzeResponse struct {
	URL          string                  `json:"url"`
	Outcome      analyzer.Outcome        `json:"outcome"`
	SEO          AxisFindings            `json:"seo"`
	AEO          AxisFindings            `json:"aeo"`
	AIO          AxisFindings            `json:"aio"`
	Keywords     []analyzer.KeywordEntry `json:"keywords"`
	Metrics      *analyzer.Metrics       `json:"metrics,omitempty"`
	SummaryChart string                  `json:"summaryChart,omitempty"`
	WordCloud    string                  `json:"wordCloud,omitempty"`
	Warnings     []string                `json:"warnings"`
}

func axisFindings(result *analyzer.Result, axis analyzer.Axis) AxisFindings {
	return AxisFindings{
		Good: result.Good(axis),
		Bad:  result.Bad(axis),
	}
}

func (s *Server) analyzeURL(c *gin.Context) {
	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid URL provided",
		})
		return
	}

	logger := s.logger.With(
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("url", request.URL))
	logger.Info("Analyze request received", zap.String("client_ip", c.ClientIP()))

	start := time.Now()
	result := s.analyzer.Analyze(c.Request.Context(), request.URL)
	elapsed := time.Since(start)

	s.metrics.RecordAnalysis(result, elapsed)
	s.stats.TrackAnalysis(request.URL, elapsed, result.Outcome != analyzer.OutcomeSuccess)

	c.JSON(http.StatusOK, s.buildResponse(result, logger))
}

// buildResponse renders the charts. A chart failure becomes a warning.
func (s *Server) buildResponse(result *analyzer.Result, logger *zap.Logger) AnalyzeResponse {
	resp := AnalyzeResponse{
		URL:      result.URL,
		Outcome:  result.Outcome,
		SEO:      axisFindings(result, analyzer.AxisSEO),
		AEO:      axisFindings(result, analyzer.AxisAEO),
		AIO:      axisFindings(result, analyzer.AxisAIO),
		Keywords: result.Keywords,
		Metrics:  result.Metrics,
		Warnings: make([]string, 0),
	}

	counts := result.Counts()
	bars := make([]report.Bar, 0, len(analyzer.Axes))
	for _, axis := range analyzer.Axes {
		bars = append(bars, report.Bar{
			Label: axis.Label(),
			Good:  counts.Good[axis],
			Bad:   counts.Bad[axis],
		})
	}
	chart, err := report.SummaryChart(s.chartTitle, bars)
	if err != nil {
		logger.Warn("Bar chart generation failed", zap.Error(err))
		s.metrics.RecordChartFailure("bar chart")
		resp.Warnings = append(resp.Warnings, warnBarChart)
	} else {
		resp.SummaryChart = chart
	}

	if len(result.Keywords) == 0 {
		resp.Warnings = append(resp.Warnings, warnKeywords)
		return resp
	}

	cloud, err := report.WordCloud(result.Keywords)
	if err != nil {
		if !errors.Is(err, report.ErrNoKeywords) {
			logger.Warn("Word cloud generation failed", zap.Error(err))
		}
		s.metrics.RecordChartFailure("word cloud")
		resp.Warnings = append(resp.Warnings, warnWordCloud)
	} else {
		resp.WordCloud = cloud
	}

	return resp
}
