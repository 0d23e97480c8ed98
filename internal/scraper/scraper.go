package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/tampere-gigs/internal/concert"
	"github.com/pfrederiksen/tampere-gigs/internal/logger"
)

const (
	ConcertsURL = "https://kulttuuritoimitus.fi/konsertit-pirkanmaa/"
	UserAgent   = "tampere-gigs/1.0 (github.com/pfrederiksen/tampere-gigs)"
	Timeout     = 30 * time.Second
)

// Scraper handles fetching and parsing the concert listing page
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper for the default listing page
func New() *Scraper {
	return NewWithURL(ConcertsURL)
}

// NewWithURL creates a Scraper that fetches pageURL instead of the default page
func NewWithURL(pageURL string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: pageURL,
	}
}

// URL returns the page the scraper fetches
func (s *Scraper) URL() string {
	return s.url
}

// FetchHTML fetches the listing page and returns its markup. There are no retries.
func (s *Scraper) FetchHTML(ctx context.Context) (string, error) {
	start := time.Now()
	defer func() {
		logger.RecordTiming("fetch", time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body strings.Builder
	if _, err := io.Copy(&body, resp.Body); err != nil {
		return "", fmt.Errorf("reading page: %w", err)
	}

	return body.String(), nil
}

// FetchConcerts fetches the listing page and extracts its concerts, resolving
// dates relative to now
func (s *Scraper) FetchConcerts(ctx context.Context, now time.Time) ([]concert.Concert, error) {
	page, err := s.FetchHTML(ctx)
	if err != nil {
		return nil, err
	}
	return ParseConcerts(strings.NewReader(page), now)
}
