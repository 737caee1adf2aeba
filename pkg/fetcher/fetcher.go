package fetcher

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dtnitsch/web-scraper/internal/common"
	"github.com/dtnitsch/web-scraper/models"
)

// Fetcher issues a single GET per call using library defaults:
// no timeout, no retries and the default redirect policy.
type Fetcher struct {
	client *http.Client
	log    zerolog.Logger
}

func NewFetcher(logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{},
		log:    logger.With().Str("component", "fetcher").Logger(),
	}
}

// NewFetcherWithClient is used when the caller needs to control transport,
// e.g. tests pointing at an httptest server.
func NewFetcherWithClient(client *http.Client, logger zerolog.Logger) *Fetcher {
	f := NewFetcher(logger)
	if client != nil {
		f.client = client
	}
	return f
}

// Fetch returns the page body only for a 200 response. Every failure is a *FetchError.
func (f *Fetcher) Fetch(rawURL string) (*models.Page, error) {
	url := common.SanitizeURL(rawURL)
	if !common.IsValidURL(url) {
		return nil, &FetchError{Kind: KindInvalidURL, URL: url}
	}

	f.log.Debug().Str("url", url).Msg("Fetching URL")
	resp, err := f.client.Get(url)
	if err != nil {
		f.log.Warn().Err(err).Str("url", url).Msg("Request failed")
		return nil, &FetchError{Kind: KindTransportError, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn().Str("url", url).Int("status_code", resp.StatusCode).Msg("Page not accessible")
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Kind: KindHTTPError, URL: url, StatusCode: resp.StatusCode}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.Warn().Err(err).Str("url", url).Msg("Failed to read response body")
		return nil, &FetchError{Kind: KindTransportError, URL: url, Err: err}
	}

	f.log.Debug().Str("url", url).Int("status_code", resp.StatusCode).Int("bytes", len(bodyBytes)).Msg("Fetched URL")
	return &models.Page{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		HTML:        bodyBytes,
	}, nil
}
