package report

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

// fontFace returns the bundled Go Regular face at the given point size
func fontFace(size float64) (font.Face, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", regularErr)
	}
	return truetype.NewFace(regular, &truetype.Options{Size: size}), nil
}
