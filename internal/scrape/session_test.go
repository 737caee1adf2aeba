package scrape

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"

	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/fetcher"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<h1>Main Title</h1>
<div><p>Hello <em>nested</em></p></div>
<h2>Sub Title</h2>
<h3>Minor</h3>
<a href="/first">first</a>
<a>no target</a>
<a href="https://example.org/second">second</a>
</body>
</html>`

// fakeFetcher records calls and serves canned pages or errors.
type fakeFetcher struct {
	pages map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeFetcher) Fetch(rawURL string) (*models.Page, error) {
	f.calls = append(f.calls, rawURL)
	if err, ok := f.errs[rawURL]; ok {
		return nil, err
	}
	if body, ok := f.pages[rawURL]; ok {
		return &models.Page{URL: rawURL, StatusCode: http.StatusOK, HTML: []byte(body)}, nil
	}
	return nil, &fetcher.FetchError{Kind: fetcher.KindTransportError, URL: rawURL, Err: errors.New("no such host")}
}

func runSession(t *testing.T, f PageFetcher, input string) string {
	t.Helper()

	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out, f, models.ScraperConfig{RuleWidth: 10}, zerolog.Nop())
	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestSession_InvalidURLNeverFetches(t *testing.T) {
	f := &fakeFetcher{}
	out := runSession(t, f, "example.com\nnot a url\nhttps://\n")

	if len(f.calls) != 0 {
		t.Errorf("fetcher called %d times for invalid URLs: %v", len(f.calls), f.calls)
	}
	if got := strings.Count(out, invalidURLMsg); got != 3 {
		t.Errorf("invalid URL banner printed %d times, want 3", got)
	}
	// three rejected URLs plus the final prompt that hits EOF
	if got := strings.Count(out, urlPrompt); got != 4 {
		t.Errorf("URL prompt printed %d times, want 4", got)
	}
}

func TestSession_HTTPErrorReturnsToURLPrompt(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{
		"http://site.test/missing": &fetcher.FetchError{Kind: fetcher.KindHTTPError, StatusCode: http.StatusNotFound},
	}}
	out := runSession(t, f, "http://site.test/missing\n")

	if !strings.Contains(out, inaccessibleMsg) {
		t.Errorf("output missing inaccessible message:\n%s", out)
	}
	if strings.Contains(out, menuMsg) || strings.Contains(out, modePrompt) {
		t.Error("menu shown after a failed fetch")
	}
	if got := strings.Count(out, urlPrompt); got != 2 {
		t.Errorf("URL prompt printed %d times, want 2", got)
	}
}

func TestSession_TransportErrorReturnsToURLPrompt(t *testing.T) {
	f := &fakeFetcher{}
	out := runSession(t, f, "http://unreachable.test\n")

	if !strings.Contains(out, requestErrorMsg) {
		t.Errorf("output missing request error message:\n%s", out)
	}
	if strings.Contains(out, modePrompt) {
		t.Error("mode prompt shown after a failed fetch")
	}
	if len(f.calls) != 1 {
		t.Errorf("fetcher called %d times, want 1", len(f.calls))
	}
}

func TestSession_UntypedFetchErrorIsRequestError(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{"http://site.test": errors.New("boom")}}
	out := runSession(t, f, "http://site.test\n")

	if !strings.Contains(out, requestErrorMsg) {
		t.Errorf("output missing request error message:\n%s", out)
	}
}

func TestSession_InvalidChoiceKeepsPage(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{"http://site.test": testPage}}
	out := runSession(t, f, "http://site.test\n5\nfive\n4\n")

	if len(f.calls) != 1 {
		t.Errorf("fetcher called %d times, want 1 (no re-fetch after invalid choice)", len(f.calls))
	}
	if got := strings.Count(out, invalidChoiceMsg); got != 2 {
		t.Errorf("invalid choice message printed %d times, want 2", got)
	}
	if got := strings.Count(out, modePrompt); got != 3 {
		t.Errorf("mode prompt printed %d times, want 3", got)
	}
	if !strings.Contains(out, "/first\nhttps://example.org/second\n") {
		t.Errorf("links missing after valid choice:\n%s", out)
	}
}

func TestSession_Modes(t *testing.T) {
	tests := []struct {
		name      string
		choice    string
		wantIn    []string
		wantOrder []string
		wantNot   []string
	}{
		{
			name:    "full markup",
			choice:  "ONE",
			wantIn:  []string{"<!DOCTYPE html>", "<title>Test Page</title>", "<h1>Main Title</h1>", "THE CODE ENDS HERE!"},
			wantNot: []string{"Main Title\n"},
		},
		{
			name:      "headings",
			choice:    "three",
			wantOrder: []string{"Main Title\n", "Sub Title\n"},
			wantNot:   []string{"Minor", "Test Page"},
		},
		{
			name:      "links",
			choice:    "4",
			wantOrder: []string{"/first\n", "https://example.org/second\n"},
			wantNot:   []string{"no target"},
		},
		{
			name:   "all text",
			choice: "Two",
			wantIn: []string{"Test Page\n", "Hello nested\n", "nested\n", "THE TEXT ENDS HERE!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{pages: map[string]string{"http://site.test": testPage}}
			out := runSession(t, f, "http://site.test\n"+tt.choice+"\n")

			for _, want := range tt.wantIn {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q", want)
				}
			}
			last := -1
			for _, want := range tt.wantOrder {
				idx := strings.Index(out, want)
				if idx < 0 {
					t.Errorf("output missing %q", want)
					continue
				}
				if idx < last {
					t.Errorf("%q printed out of document order", want)
				}
				last = idx
			}
			for _, unwanted := range tt.wantNot {
				if strings.Contains(out, unwanted) {
					t.Errorf("output unexpectedly contains %q", unwanted)
				}
			}
		})
	}
}

func TestSession_StateTransitions(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{"http://site.test": testPage}}
	var out bytes.Buffer
	s := NewSession(strings.NewReader("bad\nhttp://site.test\n9\n3\n"), &out, f, models.ScraperConfig{}, zerolog.Nop())

	steps := []State{
		StateAwaitingURL,  // "bad" rejected
		StateAwaitingMode, // page fetched
		StateAwaitingMode, // "9" rejected
		StateDisplaying,   // "3" accepted
		StateAwaitingURL,  // headings printed
	}
	for i, want := range steps {
		if err := s.Step(); err != nil {
			t.Fatalf("step %d: Step() error = %v", i, err)
		}
		if got := s.State(); got != want {
			t.Fatalf("step %d: state = %v, want %v", i, got, want)
		}
	}
	if s.page != nil {
		t.Error("page retained after display")
	}
	if !strings.Contains(out.String(), strings.Repeat("-", models.DefaultRuleWidth)+"\n") {
		t.Error("default rule not drawn")
	}
}

func TestSession_RuleWidth(t *testing.T) {
	f := &fakeFetcher{}
	out := runSession(t, f, "nope\n")

	if !strings.Contains(out, "\n----------\n") {
		t.Errorf("10-wide rule not found:\n%s", out)
	}
	if strings.Contains(out, "-----------") {
		t.Error("rule wider than configured")
	}
}

func TestSession_ReadErrorIsReturned(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(iotest.ErrReader(errors.New("tty gone")), &out, &fakeFetcher{}, models.ScraperConfig{}, zerolog.Nop())

	if err := s.Run(); err == nil || err.Error() != "tty gone" {
		t.Errorf("Run() error = %v, want tty gone", err)
	}
}

func TestSession_WithHTTPServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, testPage)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	input := strings.Join([]string{
		srv.URL + "/missing",
		closedURL,
		srv.URL,
		"3",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out, fetcher.NewFetcher(zerolog.Nop()), models.ScraperConfig{RuleWidth: 5}, zerolog.Nop())
	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	inaccessible := strings.Index(got, inaccessibleMsg)
	requestErr := strings.Index(got, requestErrorMsg)
	ready := strings.Index(got, readyMsg)
	heading := strings.Index(got, "Main Title\nSub Title\n")
	if inaccessible < 0 || requestErr < 0 || ready < 0 || heading < 0 {
		t.Fatalf("missing expected output (404=%d, refused=%d, ready=%d, headings=%d):\n%s", inaccessible, requestErr, ready, heading, got)
	}
	if !(inaccessible < requestErr && requestErr < ready && ready < heading) {
		t.Error("outputs printed in the wrong order")
	}
}

func TestScrape_DecodesDeclaredCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		fmt.Fprint(w, "<h1>Caf\xe9</h1><p>na\xefve</p><a href=\"/men\xfa\">x</a>")
	}))
	defer srv.Close()

	f := fetcher.NewFetcher(zerolog.Nop())
	tests := []struct {
		mode models.ExtractionMode
		want string
	}{
		{mode: models.ModeHeadings, want: "Café"},
		{mode: models.ModeAllText, want: "naïve"},
		{mode: models.ModeLinks, want: "/menú"},
		{mode: models.ModeFullMarkup, want: "<h1>Café</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			result, err := Scrape(f, srv.URL, tt.mode)
			if err != nil {
				t.Fatalf("Scrape() error = %v", err)
			}
			joined := strings.Join(result.Items, "\n")
			if !strings.Contains(joined, tt.want) {
				t.Errorf("items %q do not contain %q", result.Items, tt.want)
			}
		})
	}
}

func TestSession_OverlongLineIsInvalidEntry(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{"http://site.test": testPage}}
	huge := strings.Repeat("a", maxLineBytes+10)
	out := runSession(t, f, huge+"\nhttp://site.test\n"+huge+"\n4\n")

	if got := strings.Count(out, invalidURLMsg); got != 1 {
		t.Errorf("invalid URL banner printed %d times, want 1", got)
	}
	if got := strings.Count(out, invalidChoiceMsg); got != 1 {
		t.Errorf("invalid choice message printed %d times, want 1", got)
	}
	if len(f.calls) != 1 || f.calls[0] != "http://site.test" {
		t.Errorf("fetcher calls = %v, want only http://site.test", f.calls)
	}
	if !strings.Contains(out, "/first\nhttps://example.org/second\n") {
		t.Error("session did not continue after the overlong lines")
	}
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{"http://site.test": testPage}}
	out := runSession(t, f, "http://site.test\r\n4")

	if len(f.calls) != 1 || f.calls[0] != "http://site.test" {
		t.Errorf("fetcher calls = %v, want http://site.test without CR", f.calls)
	}
	if !strings.Contains(out, "/first\n") {
		t.Errorf("unterminated final choice was not used:\n%s", out)
	}
}

func TestSession_ExtractionFailureReturnsToURLPrompt(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(""), &out, &fakeFetcher{}, models.ScraperConfig{RuleWidth: 10}, zerolog.Nop())
	s.page = &models.Page{URL: "http://site.test", StatusCode: http.StatusOK, HTML: []byte(testPage)}
	s.mode = models.ModeUnknown
	s.state = StateDisplaying

	if err := s.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if !strings.Contains(out.String(), parseErrorMsg) {
		t.Errorf("parse error banner missing:\n%s", out.String())
	}
	if got := s.State(); got != StateAwaitingURL {
		t.Errorf("state = %v, want %v", got, StateAwaitingURL)
	}
	if s.page != nil {
		t.Error("page retained after failed extraction")
	}
}

func TestSession_FTPURLIsRequestError(t *testing.T) {
	out := runSession(t, fetcher.NewFetcher(zerolog.Nop()), "ftp://127.0.0.1/file.txt\n")

	if !strings.Contains(out, requestErrorMsg) {
		t.Errorf("output missing request error message:\n%s", out)
	}
	if strings.Contains(out, invalidURLMsg) {
		t.Error("ftp URL reported as malformed")
	}
}
