package scrape

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/fetcher"
)

// NewLogger writes human-readable diagnostics. Warnings and above by default,
// so the console UI on stdout stays clean.
func NewLogger(w io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func loggerFromContext(c *cli.Context) zerolog.Logger {
	errWriter := c.App.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	return NewLogger(errWriter, c.Bool("verbose"), c.Bool("quiet"))
}

func configFromContext(c *cli.Context) models.ScraperConfig {
	return models.ScraperConfig{
		RuleWidth: c.Int("rule-width"),
		RuleChar:  c.String("rule-char"),
	}.Normalize()
}

// InteractiveAction runs the menu loop on stdin/stdout.
func InteractiveAction(c *cli.Context) error {
	logger := loggerFromContext(c)

	in := c.App.Reader
	if in == nil {
		in = os.Stdin
	}
	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}

	session := NewSession(in, out, fetcher.NewFetcher(logger), configFromContext(c), logger)
	if err := session.Run(); err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return cli.Exit(fmt.Sprintf("failed to read input: %v", err), 2)
	}
	return nil
}

// ExtractAction fetches one URL and prints a single extraction without prompting.
func ExtractAction(c *cli.Context) error {
	logger := loggerFromContext(c)

	mode, ok := models.ParseModeName(c.String("mode"))
	if !ok {
		return cli.Exit(fmt.Sprintf("invalid mode %q: use html, text, headings, links or 1-4", c.String("mode")), 2)
	}

	format := strings.ToLower(c.String("format"))
	switch format {
	case "text", "json", "yaml":
	default:
		return cli.Exit(fmt.Sprintf("invalid format %q: use text, json or yaml", c.String("format")), 2)
	}

	result, err := Scrape(fetcher.NewFetcher(logger), c.String("url"), mode)
	if err != nil {
		var fetchErr *fetcher.FetchError
		if errors.As(err, &fetchErr) && fetchErr.Kind == fetcher.KindInvalidURL {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
		}
		logger.Error().Err(err).Str("url", c.String("url")).Msg("extraction failed")
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}
	if err := WriteResult(out, result, format); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write output: %v", err), 2)
	}
	return nil
}

// WriteResult renders result as plain lines, indented JSON or YAML.
func WriteResult(w io.Writer, result *models.ExtractionResult, format string) error {
	var outputData []byte
	var marshalErr error

	switch format {
	case "yaml":
		outputData, marshalErr = yaml.Marshal(result)
	case "json":
		outputData, marshalErr = json.MarshalIndent(result, "", "  ")
		outputData = append(outputData, '\n')
	default:
		var sb strings.Builder
		for _, item := range result.Items {
			sb.WriteString(item)
			sb.WriteString("\n")
		}
		outputData = []byte(sb.String())
	}
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal output: %w", marshalErr)
	}

	_, err := w.Write(outputData)
	return err
}
