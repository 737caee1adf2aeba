package fetcher

import "fmt"

// ErrorKind classifies why a fetch produced no page.
type ErrorKind int

const (
	// KindInvalidURL means the URL failed validation; no request was made.
	KindInvalidURL ErrorKind = iota + 1
	// KindHTTPError means the server answered with a status other than 200.
	KindHTTPError
	// KindTransportError covers DNS, connection, protocol and body-read failures.
	KindTransportError
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindHTTPError:
		return "http_error"
	case KindTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// FetchError is returned by Fetcher.Fetch for every failed fetch.
type FetchError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int // set for KindHTTPError
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return fmt.Sprintf("invalid URL %q", e.URL)
	case KindHTTPError:
		return fmt.Sprintf("failed to fetch HTML, status code: %d", e.StatusCode)
	default:
		return fmt.Sprintf("failed to make HTTP request: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
