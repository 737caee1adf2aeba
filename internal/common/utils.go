package common

import (
	"net/url"
	"strings"
)

// SanitizeURL trims whitespace left over from console input.
func SanitizeURL(rawURL string) string {
	return strings.TrimSpace(rawURL)
}

// acceptedSchemes are syntactically valid. Only http(s) can be fetched;
// the fetcher reports the others as request errors.
var acceptedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ftps":  true,
}

// IsValidURL reports whether rawURL is a well-formed URL with a scheme and host.
// It never touches the network.
func IsValidURL(rawURL string) bool {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return false
	}

	// Reject URLs with literal spaces (must be pre-encoded as %20)
	if strings.Contains(cleaned, " ") {
		return false
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return false
	}

	if !acceptedSchemes[parsed.Scheme] {
		return false
	}

	if parsed.Host == "" || parsed.Hostname() == "" {
		return false
	}

	// Example: "https://example.com{}" should fail
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") && !isBracketedIPv6(parsed.Host) {
		return false
	}

	return true
}

// isBracketedIPv6 allows hosts like "[::1]:8080", the only legal use of brackets.
func isBracketedIPv6(host string) bool {
	if !strings.HasPrefix(host, "[") {
		return false
	}
	end := strings.Index(host, "]")
	if end < 0 {
		return false
	}
	rest := host[end+1:]
	return !strings.ContainsAny(host[1:end]+rest, "{}[]<>\"'")
}
