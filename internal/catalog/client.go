// Package catalog downloads the template catalog from gitignore.io.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("git-ignore/catalog")

const (
	// DefaultURL is the catalog endpoint returning every template as JSON.
	DefaultURL = "https://www.gitignore.io/api/list?format=json"

	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 64 << 20
)

// FetchError is returned when the catalog cannot be downloaded. Status is 0
// for transport failures.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %d %s: %v", e.URL, e.Status, http.StatusText(e.Status), e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches the raw catalog bytes.
type Client struct {
	url     string
	timeout time.Duration
	rclient *retryablehttp.Client
}

// New creates a catalog client for catalogURL. An empty URL selects DefaultURL.
func New(catalogURL string, options ...Option) *Client {
	opts := getOpts(options)
	if catalogURL == "" {
		catalogURL = DefaultURL
	}

	httpClient := opts.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		url:     catalogURL,
		timeout: opts.timeout,
		rclient: &retryablehttp.Client{
			HTTPClient:   httpClient,
			RetryWaitMin: opts.retryWaitMin,
			RetryWaitMax: opts.retryWaitMax,
			RetryMax:     opts.retryMax,
			CheckRetry:   retryablehttp.DefaultRetryPolicy,
			Backoff:      retryablehttp.DefaultBackoff,
			ErrorHandler: retryablehttp.PassthroughErrorHandler,
		},
	}
}

// URL returns the catalog endpoint.
func (c *Client) URL() string { return c.url }

// Source returns the site the catalog came from, used in the rendered header.
func (c *Client) Source() string { return SourceOf(c.url) }

// Fetch downloads the catalog. The body is returned as-is; validating it is
// left to the caller.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log.Debugw("fetching catalog", "url", c.url)
	resp, err := c.rclient.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{URL: c.url, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: c.url, Status: resp.StatusCode, Err: errorFromBody(body)}
	}

	log.Debugw("fetched catalog", "url", c.url, "bytes", len(body))
	return body, nil
}

func errorFromBody(body []byte) error {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return errors.New("empty response body")
	}
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return errors.New(text)
}

// SourceOf reduces a catalog URL to scheme://host. Unparseable input is
// returned unchanged.
func SourceOf(catalogURL string) string {
	u, err := url.Parse(catalogURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return catalogURL
	}
	return u.Scheme + "://" + u.Host
}
