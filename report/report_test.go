package report

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/discoverability/analyzer"
)

func decodePNG(t *testing.T, encoded string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestSummaryChart(t *testing.T) {
	encoded, err := SummaryChart("Example Summary", []Bar{
		{Label: "SEO", Good: 6, Bad: 1},
		{Label: "AEO", Good: 3, Bad: 0},
		{Label: "AIO", Good: 2, Bad: 1},
	})
	require.NoError(t, err)

	img := decodePNG(t, encoded)
	assert.Equal(t, image.Rect(0, 0, chartWidth, chartHeight), img.Bounds())
}

func TestSummaryChartAllZero(t *testing.T) {
	encoded, err := SummaryChart("", []Bar{{Label: "SEO"}, {Label: "AEO"}, {Label: "AIO"}})
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
}

func TestSummaryChartErrors(t *testing.T) {
	_, err := SummaryChart("x", nil)
	var chartErr *ChartError
	require.True(t, errors.As(err, &chartErr))
	assert.Equal(t, "bar chart", chartErr.Chart)

	_, err = SummaryChart("x", []Bar{{Label: "SEO", Good: -1}})
	assert.Error(t, err)
}

func TestTickStep(t *testing.T) {
	tests := []struct {
		max      int
		expected int
	}{
		{1, 1},
		{10, 1},
		{11, 2},
		{20, 2},
		{21, 2},
		{22, 5},
		{50, 5},
		{55, 10},
		{250, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tickStep(tt.max), "max %d", tt.max)
	}
}

func TestWordCloud(t *testing.T) {
	encoded, err := WordCloud([]analyzer.KeywordEntry{
		{Word: "cilium", Frequency: 12},
		{Word: "ebpf", Frequency: 8},
		{Word: "networking", Frequency: 5},
		{Word: "kubernetes", Frequency: 3},
		{Word: "security", Frequency: 1},
	})
	require.NoError(t, err)

	img := decodePNG(t, encoded)
	assert.Equal(t, image.Rect(0, 0, cloudWidth, cloudHeight), img.Bounds())
}

func TestWordCloudIsDeterministic(t *testing.T) {
	keywords := []analyzer.KeywordEntry{{Word: "mat", Frequency: 3}, {Word: "cat", Frequency: 1}}

	first, err := WordCloud(keywords)
	require.NoError(t, err)
	second, err := WordCloud(keywords)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWordCloudWithoutKeywords(t *testing.T) {
	_, err := WordCloud(nil)
	assert.True(t, errors.Is(err, ErrNoKeywords))

	_, err = WordCloud([]analyzer.KeywordEntry{})
	assert.True(t, errors.Is(err, ErrNoKeywords))
}

func TestBoxOverlap(t *testing.T) {
	a := box{x: 0, y: 0, w: 10, h: 10}
	assert.True(t, a.overlaps(box{x: 5, y: 5, w: 10, h: 10}))
	assert.False(t, a.overlaps(box{x: 10, y: 0, w: 10, h: 10}))
	assert.True(t, a.inside(10, 10))
	assert.False(t, box{x: -1, y: 0, w: 5, h: 5}.inside(10, 10))
}
