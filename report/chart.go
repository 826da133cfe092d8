package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

const (
	chartWidth  = 640
	chartHeight = 480

	marginLeft   = 70.0
	marginRight  = 120.0
	marginTop    = 50.0
	marginBottom = 50.0
)

const (
	goodColor = "#008080"
	badColor  = "#ff0000"
)

// DefaultChartTitle is used when no title is configured
const DefaultChartTitle = "Analysis Summary"

// Bar is one stacked column of the summary chart
type Bar struct {
	Label string
	Good  int
	Bad   int
}

// SummaryChart draws a stacked bar chart with good counts at the bottom and
// bad counts on top, and returns it as a base64 encoded PNG.
func SummaryChart(title string, bars []Bar) (string, error) {
	if len(bars) == 0 {
		return "", &ChartError{Chart: "bar chart", Err: fmt.Errorf("no categories")}
	}
	if title == "" {
		title = DefaultChartTitle
	}

	for _, b := range bars {
		if b.Good < 0 || b.Bad < 0 {
			return "", &ChartError{Chart: "bar chart", Err: fmt.Errorf("negative count for %s", b.Label)}
		}
	}

	labelFace, err := fontFace(12)
	if err != nil {
		return "", &ChartError{Chart: "bar chart", Err: err}
	}
	titleFace, err := fontFace(16)
	if err != nil {
		return "", &ChartError{Chart: "bar chart", Err: err}
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	plotW := chartWidth - marginLeft - marginRight
	plotH := chartHeight - marginTop - marginBottom
	originX := marginLeft
	originY := marginTop + plotH

	maxTotal := 1
	for _, b := range bars {
		if t := b.Good + b.Bad; t > maxTotal {
			maxTotal = t
		}
	}
	step := tickStep(maxTotal)
	top := int(math.Ceil(float64(maxTotal)/float64(step))) * step
	scale := plotH / float64(top)

	// grid and y ticks
	dc.SetFontFace(labelFace)
	dc.SetLineWidth(1)
	for v := 0; v <= top; v += step {
		y := originY - float64(v)*scale
		dc.SetHexColor("#e0e0e0")
		dc.DrawLine(originX, y, originX+plotW, y)
		dc.Stroke()
		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(strconv.Itoa(v), originX-8, y, 1, 0.5)
	}

	slot := plotW / float64(len(bars))
	barW := slot * 0.6
	for i, b := range bars {
		x := originX + slot*float64(i) + (slot-barW)/2
		goodH := float64(b.Good) * scale
		badH := float64(b.Bad) * scale

		dc.SetHexColor(goodColor)
		dc.DrawRectangle(x, originY-goodH, barW, goodH)
		dc.Fill()

		dc.SetHexColor(badColor)
		dc.DrawRectangle(x, originY-goodH-badH, barW, badH)
		dc.Fill()

		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(b.Label, x+barW/2, originY+8, 0.5, 1)
	}

	// axes
	dc.SetHexColor("#333333")
	dc.SetLineWidth(1.5)
	dc.DrawLine(originX, marginTop, originX, originY)
	dc.DrawLine(originX, originY, originX+plotW, originY)
	dc.Stroke()

	// y label
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 20, marginTop+plotH/2)
	dc.DrawStringAnchored("Count", 20, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	drawLegend(dc, originX+plotW+20, marginTop+10)

	dc.SetFontFace(titleFace)
	dc.DrawStringAnchored(title, chartWidth/2, marginTop/2, 0.5, 0.5)

	encoded, err := encodePNG(dc)
	if err != nil {
		return "", &ChartError{Chart: "bar chart", Err: err}
	}
	return encoded, nil
}

func drawLegend(dc *gg.Context, x, y float64) {
	entries := []struct {
		label string
		color string
	}{
		{"Good", goodColor},
		{"Bad", badColor},
	}
	for i, e := range entries {
		ey := y + float64(i)*22
		dc.SetHexColor(e.color)
		dc.DrawRectangle(x, ey, 14, 14)
		dc.Fill()
		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(e.label, x+20, ey+7, 0, 0.5)
	}
}

// tickStep picks an integer y-axis step giving at most ten ticks
func tickStep(max int) int {
	for mult := 1; ; mult *= 10 {
		for _, s := range []int{1, 2, 5} {
			if step := s * mult; max/step <= 10 {
				return step
			}
		}
	}
}
