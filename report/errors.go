package report

import (
	"errors"
	"fmt"
)

// ErrNoKeywords is returned when there is nothing to draw in a word cloud
var ErrNoKeywords = errors.New("no keywords to render")

// ChartError reports a chart that could not be rendered
type ChartError struct {
	Chart string
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Chart, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}
