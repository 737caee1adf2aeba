package extractor

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/dtnitsch/web-scraper/models"
)

var (
	elementSelector = cascadia.MustCompile("*")
	headingSelector = cascadia.MustCompile("h1, h2")
	anchorSelector  = cascadia.MustCompile("a")
)

// NewDocument decodes body to UTF-8 and parses it into a navigable document.
// The charset comes from contentType, then a BOM or <meta> tag, then sniffing.
func NewDocument(body []byte, contentType string) (*goquery.Document, error) {
	utf8Body, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode HTML: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Extract returns the lines to print for mode, in document order.
func Extract(doc *goquery.Document, mode models.ExtractionMode) ([]string, error) {
	switch mode {
	case models.ModeFullMarkup:
		markup, err := Markup(doc)
		if err != nil {
			return nil, err
		}
		return []string{markup}, nil
	case models.ModeAllText:
		return AllText(doc), nil
	case models.ModeHeadings:
		return Headings(doc), nil
	case models.ModeLinks:
		return Links(doc), nil
	default:
		return nil, fmt.Errorf("unsupported extraction mode: %v", mode)
	}
}

// Markup re-serializes the parsed tree. The result is normalized by the
// parser (implied html/head/body, attribute quoting) and is not byte-identical
// to the source.
func Markup(doc *goquery.Document) (string, error) {
	var buf bytes.Buffer
	for _, n := range doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render HTML: %w", err)
		}
	}
	return buf.String(), nil
}

// AllText returns each element's full text content, one entry per element.
// Text inside nested elements is repeated for every ancestor.
func AllText(doc *goquery.Document) []string {
	var texts []string
	doc.FindMatcher(elementSelector).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	return texts
}

// Headings returns the text of every h1 and h2.
func Headings(doc *goquery.Document) []string {
	var headings []string
	doc.FindMatcher(headingSelector).Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Text())
	})
	return headings
}

// Links returns the href of every anchor that has a non-empty one.
func Links(doc *goquery.Document) []string {
	var links []string
	doc.FindMatcher(anchorSelector).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})
	return links
}
