package models

import "strings"

// ExtractionMode selects which view of a fetched page is printed.
type ExtractionMode int

const (
	ModeUnknown    ExtractionMode = iota
	ModeFullMarkup                // Re-serialized document
	ModeAllText                   // Text of every element
	ModeHeadings                  // h1 and h2 text
	ModeLinks                     // href of every anchor
)

// modeTokens maps accepted menu input (lowercased) to a mode.
var modeTokens = map[string]ExtractionMode{
	"1":     ModeFullMarkup,
	"one":   ModeFullMarkup,
	"2":     ModeAllText,
	"two":   ModeAllText,
	"3":     ModeHeadings,
	"three": ModeHeadings,
	"4":     ModeLinks,
	"four":  ModeLinks,
}

// ParseExtractionMode resolves user input such as "2", "two" or "TWO".
func ParseExtractionMode(input string) (ExtractionMode, bool) {
	mode, ok := modeTokens[strings.ToLower(strings.TrimSpace(input))]
	return mode, ok
}

func (m ExtractionMode) String() string {
	switch m {
	case ModeFullMarkup:
		return "html"
	case ModeAllText:
		return "text"
	case ModeHeadings:
		return "headings"
	case ModeLinks:
		return "links"
	default:
		return "unknown"
	}
}

// MarshalText lets the mode serialize by name in JSON and YAML output.
func (m ExtractionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseModeName accepts a mode's name ("links") or any menu token.
// It is used by flags, not by the interactive menu.
func ParseModeName(name string) (ExtractionMode, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, m := range []ExtractionMode{ModeFullMarkup, ModeAllText, ModeHeadings, ModeLinks} {
		if m.String() == normalized {
			return m, true
		}
	}
	return ParseExtractionMode(normalized)
}
