package models

// Page is a successfully fetched web page, held only for one fetch-extract cycle.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	HTML        []byte
}

// ExtractionResult is the structured output of a non-interactive extraction.
type ExtractionResult struct {
	URL        string         `json:"url" yaml:"url"`
	Mode       ExtractionMode `json:"mode" yaml:"mode"`
	StatusCode int            `json:"status_code" yaml:"status_code"`
	Items      []string       `json:"items" yaml:"items"`
}
