package scrape

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dtnitsch/web-scraper/internal/common"
	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/fetcher"
)

// State is a step of the interactive loop.
type State int

const (
	StateAwaitingURL State = iota
	StateAwaitingMode
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateAwaitingURL:
		return "awaiting_url"
	case StateAwaitingMode:
		return "awaiting_mode"
	case StateDisplaying:
		return "displaying"
	default:
		return "unknown"
	}
}

// maxLineBytes caps one line of console input. Longer lines are discarded
// and handled as an invalid entry.
const maxLineBytes = 1024 * 1024

var errLineTooLong = errors.New("input line too long")

// PageFetcher is satisfied by *fetcher.Fetcher.
type PageFetcher interface {
	Fetch(rawURL string) (*models.Page, error)
}

// Session runs the menu loop for one user. It owns the fetched page between
// the URL prompt and the extraction; nothing outlives a cycle.
type Session struct {
	in      *bufio.Reader
	console *console
	fetcher PageFetcher
	log     zerolog.Logger

	state State
	page  *models.Page
	mode  models.ExtractionMode
}

func NewSession(in io.Reader, out io.Writer, f PageFetcher, cfg models.ScraperConfig, logger zerolog.Logger) *Session {
	cfg = cfg.Normalize()
	return &Session{
		in:      bufio.NewReader(in),
		console: newConsole(out, cfg.RuleWidth, cfg.RuleChar),
		fetcher: f,
		log:     logger.With().Str("component", "session").Logger(),
		state:   StateAwaitingURL,
	}
}

// State reports where the loop currently is.
func (s *Session) State() State {
	return s.state
}

// Run prints the banner and loops until input is exhausted. Reaching EOF is
// the only normal way out; any other read failure is returned.
func (s *Session) Run() error {
	s.console.print(banner)
	for {
		err := s.Step()
		if errors.Is(err, io.EOF) {
			s.log.Debug().Msg("Input closed, leaving session")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Step executes the current state once and moves to the next one.
func (s *Session) Step() error {
	switch s.state {
	case StateAwaitingURL:
		return s.awaitURL()
	case StateAwaitingMode:
		return s.awaitMode()
	case StateDisplaying:
		s.display()
		return nil
	default:
		s.reset()
		return nil
	}
}

// readLine returns one line without its line ending. A final line without a
// newline is still returned; io.EOF only means nothing was left to read.
func (s *Session) readLine(prompt string) (string, error) {
	s.console.print(prompt)

	var sb strings.Builder
	var read int
	tooLong := false
	for {
		chunk, err := s.in.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			if sb.Len()+len(chunk) > maxLineBytes {
				tooLong = true
				sb.Reset()
			} else {
				sb.Write(chunk)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if read == 0 {
				return "", io.EOF
			}
		} else if err != nil {
			return "", err
		}
		break
	}

	if tooLong {
		s.log.Warn().Int("bytes", read).Msg("Discarded overlong input line")
		return "", errLineTooLong
	}
	return strings.TrimRight(sb.String(), "\r\n"), nil
}

func (s *Session) awaitURL() error {
	line, err := s.readLine(urlPrompt)
	if errors.Is(err, errLineTooLong) {
		s.printInvalidURL()
		return nil
	}
	if err != nil {
		return err
	}

	rawURL := common.SanitizeURL(line)
	if !common.IsValidURL(rawURL) {
		s.log.Debug().Str("url", rawURL).Msg("Rejected malformed URL")
		s.printInvalidURL()
		return nil
	}

	page, err := s.fetcher.Fetch(rawURL)
	if err != nil {
		s.printFetchError(err)
		return nil
	}

	s.console.print("\n\n")
	s.console.print(readyMsg)
	s.console.print(menuMsg)
	s.page = page
	s.state = StateAwaitingMode
	return nil
}

func (s *Session) awaitMode() error {
	line, err := s.readLine(modePrompt)
	if err != nil && !errors.Is(err, errLineTooLong) {
		return err
	}

	mode, ok := models.ParseExtractionMode(line)
	if err != nil || !ok {
		s.log.Debug().Str("choice", line).Msg("Rejected menu choice")
		s.console.hr()
		s.console.print(invalidChoiceMsg)
		s.console.hr()
		return nil
	}

	s.mode = mode
	s.state = StateDisplaying
	return nil
}

func (s *Session) display() {
	defer s.reset()

	items, err := ExtractPage(s.page, s.mode)
	if err != nil {
		s.log.Error().Err(err).Str("url", s.page.URL).Stringer("mode", s.mode).Msg("Extraction failed")
		s.console.hr()
		s.console.print(parseErrorMsg)
		s.console.hr()
		return
	}
	s.log.Debug().Str("url", s.page.URL).Stringer("mode", s.mode).Int("items", len(items)).Msg("Extracted page")

	switch s.mode {
	case models.ModeFullMarkup:
		s.console.printf(markupIntro, s.page.URL)
		s.console.hr()
		s.printItems(items)
		s.console.print(markupOutro)
	case models.ModeAllText:
		s.console.printf(textIntro, s.page.URL)
		s.console.hr()
		s.printItems(items)
		s.console.print(textOutro)
	case models.ModeHeadings:
		s.console.printf(headingsIntro, s.page.URL)
		s.console.hr()
		s.printItems(items)
	case models.ModeLinks:
		s.console.print(linksIntro)
		s.console.hr()
		s.printItems(items)
	}
	s.console.hr()
}

func (s *Session) printItems(items []string) {
	for _, item := range items {
		s.console.println(item)
	}
}

func (s *Session) printInvalidURL() {
	s.console.hr()
	s.console.print(invalidURLMsg)
	s.console.hr()
}

func (s *Session) printFetchError(err error) {
	var fetchErr *fetcher.FetchError
	if !errors.As(err, &fetchErr) {
		fetchErr = &fetcher.FetchError{Kind: fetcher.KindTransportError, Err: err}
	}

	switch fetchErr.Kind {
	case fetcher.KindInvalidURL:
		s.printInvalidURL()
	case fetcher.KindHTTPError:
		s.console.print("\n\n")
		s.console.print(inaccessibleMsg)
		s.console.hr()
	default:
		s.console.hr()
		s.console.print(requestErrorMsg)
		s.console.hr()
	}
}

// reset drops the current page and returns to the URL prompt.
func (s *Session) reset() {
	s.page = nil
	s.mode = models.ModeUnknown
	s.state = StateAwaitingURL
}
