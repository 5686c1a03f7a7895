package repology

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/ajxudir/lastupdate/pkg/verbose"
)

// maxResponseSize caps the body read from the API (8MB).
const maxResponseSize int64 = 8 << 20

// Fetcher retrieves a document over the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher is the net/http backed Fetcher.
//
// Fields:
//   - Client: HTTP client; its Timeout bounds the whole request
//   - UserAgent: Sent with every request, repology.org rejects anonymous clients
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher with the given request timeout.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// Fetch performs a GET request and returns the body.
//
// Returns:
//   - []byte: Response body
//   - error: Transport failure, timeout or a non-2xx status
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	verbose.Debugf("GET %s", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	verbose.Debugf("HTTP %s", resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", url)
	}
	return body, nil
}
