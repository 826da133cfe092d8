package analyzer

import (
	"fmt"
	"net/http"
)

// FetchError reports a page that could not be retrieved: a transport
// failure (DNS, connect, timeout) or a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%d %s for url: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AnalysisError wraps anything unexpected that happened after the fetch
type AnalysisError struct {
	Stage string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
