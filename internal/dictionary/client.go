// Package dictionary enriches words with data from the free dictionary API.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/f3rmion/adjespin/internal/word"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the English entries endpoint of dictionaryapi.dev.
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultTimeout = 10 * time.Second
)

var (
	// ErrNotFound is returned by Fetch when the service has no entry for a word.
	ErrNotFound = errors.New("word not found")
	// ErrNoDefinition is returned when entries exist but none carries a definition.
	ErrNoDefinition = errors.New("no usable definition")
)

// Client looks words up against the dictionary API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the HTTP transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a dictionary client.
func NewClient(logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.Named("dictionary"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the enriched record for w. It never fails: any lookup
// error yields a record whose only non-empty field is Word, so one bad
// word never blocks a batch.
func (c *Client) Lookup(ctx context.Context, w string) word.Enriched {
	e, err := c.Fetch(ctx, w)
	if err != nil {
		c.log.Warn("lookup failed", zap.String("word", w), zap.Error(err))
		return word.Empty(w)
	}
	return e
}

// Fetch performs the lookup and reports why it failed.
func (c *Client) Fetch(ctx context.Context, w string) (word.Enriched, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(w)

	c.log.Debug("request", zap.String("word", w), zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return word.Empty(w), fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return word.Empty(w), fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return word.Empty(w), ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return word.Empty(w), fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return word.Empty(w), fmt.Errorf("reading response: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return word.Empty(w), fmt.Errorf("decoding response: %w", err)
	}
	if len(entries) == 0 {
		return word.Empty(w), ErrNotFound
	}

	e := extract(w, entries)
	if !e.HasDefinition() {
		// Without a definition the record carries no content at all.
		return word.Empty(w), ErrNoDefinition
	}

	c.log.Debug("response",
		zap.String("word", w),
		zap.Int("entries", len(entries)),
		zap.Bool("example", e.Example != ""),
		zap.Bool("pronunciation", e.Pronunciation != ""),
	)

	return e, nil
}

// extract picks the first definition (with its example) across all
// entries and meanings, and the first phonetic spelling that has text.
func extract(w string, entries []apiEntry) word.Enriched {
	e := word.Empty(w)

definitions:
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				if def.Definition == "" {
					continue
				}
				e.Definition = def.Definition
				e.Example = def.Example
				break definitions
			}
		}
	}

phonetics:
	for _, entry := range entries {
		for _, ph := range entry.Phonetics {
			if ph.Text != "" {
				e.Pronunciation = strings.ToLower(ph.Text)
				break phonetics
			}
		}
	}

	return e
}
