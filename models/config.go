// Package models defines data structures for configuration and extraction.
package models

import "unicode/utf8"

const (
	DefaultRuleWidth = 200
	DefaultRuleChar  = "-"
)

// ScraperConfig holds runtime configuration for a scraping session.
// All values come from CLI flags, not external config files.
type ScraperConfig struct {
	RuleWidth int
	RuleChar  string
}

// Normalize fills zero values with defaults. RuleChar is cut to its first
// rune so a rule is always RuleWidth characters wide.
func (c ScraperConfig) Normalize() ScraperConfig {
	if c.RuleWidth <= 0 {
		c.RuleWidth = DefaultRuleWidth
	}
	r, _ := utf8.DecodeRuneInString(c.RuleChar)
	if r == utf8.RuneError {
		c.RuleChar = DefaultRuleChar
	} else {
		c.RuleChar = string(r)
	}
	return c
}
