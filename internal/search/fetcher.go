package search

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the dictionary site all requests go to
	DefaultBaseURL = "http://www.trainchinese.com"

	searchPath   = "/v2/search.php"
	searchParams = "&rAp=0&height=0&width=0"
)

// ErrNotUTF8 is returned when the search page body is not valid UTF-8
var ErrNotUTF8 = errors.New("search page is not valid UTF-8")

// Getter performs a blocking GET and returns the whole response body
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client fetches search pages from the dictionary site
type Client struct {
	baseURL string
	getter  Getter
	logger  *zap.Logger
}

// NewClient creates a search client for the site at baseURL
func NewClient(baseURL string, getter Getter, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		getter:  getter,
		logger:  logger,
	}
}

// SearchURL builds the search endpoint URL for a query
func (c *Client) SearchURL(query string) string {
	return c.baseURL + searchPath + "?searchWord=" + url.QueryEscape(query) + searchParams
}

// FetchSearchPage downloads the search page for query as text
func (c *Client) FetchSearchPage(ctx context.Context, query string) (string, error) {
	searchURL := c.SearchURL(query)
	c.logger.Debug("Fetching search page", zap.String("url", searchURL))

	body, err := c.getter.Get(ctx, searchURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch search page: %w", err)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%s: %w", searchURL, ErrNotUTF8)
	}

	c.logger.Debug("Fetched search page", zap.Int("bytes", len(body)))
	return string(body), nil
}
