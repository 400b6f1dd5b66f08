package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrSizeUnknown = errors.New("content length not reported")

// HTTPProber reads media sizes from the Content-Length of a HEAD request.
type HTTPProber struct {
	client *http.Client
}

func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{client: &http.Client{Timeout: timeout}}
}

func (p *HTTPProber) Size(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("head %s: status %d", url, resp.StatusCode)
	}
	if resp.ContentLength < 0 {
		return 0, ErrSizeUnknown
	}
	return resp.ContentLength, nil
}
