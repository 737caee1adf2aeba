package scrape

import (
	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/extractor"
)

// ExtractPage parses a fetched page and returns the lines for mode.
// The document is built fresh on every call, decoded per the page's charset.
func ExtractPage(page *models.Page, mode models.ExtractionMode) ([]string, error) {
	doc, err := extractor.NewDocument(page.HTML, page.ContentType)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(doc, mode)
}

// Scrape fetches rawURL and extracts it in one call.
func Scrape(f PageFetcher, rawURL string, mode models.ExtractionMode) (*models.ExtractionResult, error) {
	page, err := f.Fetch(rawURL)
	if err != nil {
		return nil, err
	}
	items, err := ExtractPage(page, mode)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}
	return &models.ExtractionResult{
		URL:        page.URL,
		Mode:       mode,
		StatusCode: page.StatusCode,
		Items:      items,
	}, nil
}
