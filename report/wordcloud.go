package report

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/seo-optimizer/discoverability/analyzer"
)

const (
	cloudWidth  = 800
	cloudHeight = 400

	minFontSize = 10.0
	maxFontSize = 96.0
	fontStep    = 4.0

	wordPadding = 4.0
)

var cloudPalette = []string{
	"#440154", "#3b528b", "#21918c", "#5ec962", "#31688e",
	"#443983", "#35b779", "#90d743", "#287c8e", "#1f9e89",
}

type box struct {
	x, y, w, h float64
}

func (b box) overlaps(o box) bool {
	return b.x < o.x+o.w && o.x < b.x+b.w && b.y < o.y+o.h && o.y < b.y+b.h
}

func (b box) inside(w, h float64) bool {
	return b.x >= 0 && b.y >= 0 && b.x+b.w <= w && b.y+b.h <= h
}

// WordCloud draws the keywords on a white 800x400 canvas, sized by frequency,
// and returns the image as a base64 encoded PNG. Layout is deterministic:
// words are placed largest first along a spiral from the centre.
func WordCloud(keywords []analyzer.KeywordEntry) (string, error) {
	if len(keywords) == 0 {
		return "", &ChartError{Chart: "word cloud", Err: ErrNoKeywords}
	}

	dc := gg.NewContext(cloudWidth, cloudHeight)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	maxFreq := keywords[0].Frequency
	for _, k := range keywords {
		if k.Frequency > maxFreq {
			maxFreq = k.Frequency
		}
	}
	if maxFreq < 1 {
		return "", &ChartError{Chart: "word cloud", Err: ErrNoKeywords}
	}

	placed := make([]box, 0, len(keywords))
	for i, k := range keywords {
		if k.Frequency < 1 || k.Word == "" {
			continue
		}
		size := minFontSize + (maxFontSize-minFontSize)*float64(k.Frequency)/float64(maxFreq)

		for ; size >= minFontSize; size -= fontStep {
			face, err := fontFace(size)
			if err != nil {
				return "", &ChartError{Chart: "word cloud", Err: err}
			}
			dc.SetFontFace(face)
			w, h := dc.MeasureString(k.Word)

			b, ok := findSpot(placed, w+wordPadding, h+wordPadding)
			if !ok {
				continue
			}
			placed = append(placed, b)

			dc.SetHexColor(cloudPalette[i%len(cloudPalette)])
			dc.DrawStringAnchored(k.Word, b.x+b.w/2, b.y+b.h/2, 0.5, 0.5)
			break
		}
	}

	if len(placed) == 0 {
		return "", &ChartError{Chart: "word cloud", Err: ErrNoKeywords}
	}

	encoded, err := encodePNG(dc)
	if err != nil {
		return "", &ChartError{Chart: "word cloud", Err: err}
	}
	return encoded, nil
}

// findSpot walks an Archimedean spiral out from the centre until a w x h box
// fits without touching anything already placed.
func findSpot(placed []box, w, h float64) (box, bool) {
	cx, cy := float64(cloudWidth)/2, float64(cloudHeight)/2
	maxRadius := math.Hypot(cx, cy)

	for t := 0.0; ; t += 0.1 {
		r := 2 * t
		if r > maxRadius {
			return box{}, false
		}
		b := box{
			x: cx + r*math.Cos(t) - w/2,
			y: cy + r*math.Sin(t) - h/2,
			w: w,
			h: h,
		}
		if !b.inside(cloudWidth, cloudHeight) {
			continue
		}
		free := true
		for _, p := range placed {
			if b.overlaps(p) {
				free = false
				break
			}
		}
		if free {
			return b, true
		}
	}
}
