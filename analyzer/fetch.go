package analyzer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/html/charset"
)

// FetchTimeout bounds the whole page request
const FetchTimeout = 10 * time.Second

// maxBodySize caps how much of a page is read
const maxBodySize = 10 * 1024 * 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// page is the raw result of a successful fetch
type page struct {
	body       []byte
	statusCode int
	elapsed    time.Duration
}

// fetch retrieves the page body, decoded to UTF-8
func (a *Analyzer) fetch(ctx context.Context, url string) (*page, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		reader = resp.Body
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(reader, maxBodySize)); err != nil {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	// the buffer goes back to the pool, so hand out a copy
	body := make([]byte, buf.Len())
	copy(body, buf.Bytes())

	return &page{
		body:       body,
		statusCode: resp.StatusCode,
		elapsed:    time.Since(start),
	}, nil
}
