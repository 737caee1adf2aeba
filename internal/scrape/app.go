package scrape

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/help"
)

// NewApp builds the web-scraper command line.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "web-scraper",
		Usage: "Fetch a web page and print its HTML, text, headings or links",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "rule-width",
				Value: models.DefaultRuleWidth,
				Usage: "Width of the separator lines",
			},
			&cli.StringFlag{
				Name:  "rule-char",
				Value: models.DefaultRuleChar,
				Usage: "Character repeated to draw separator lines",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log fetch and extraction details to stderr",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors to stderr",
			},
		},
		// No subcommand: interactive menu loop until Ctrl-D / Ctrl-C
		Action: InteractiveAction,
		Commands: []*cli.Command{
			{
				Name:  "extract",
				Usage: "Fetch one URL and print a single extraction",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Usage:    "Page to fetch",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: "html",
						Usage: "html, text, headings, links (or 1-4)",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "Output format: text, json or yaml",
					},
				},
				Action: ExtractAction,
			},
			{
				Name:   "quickstart",
				Usage:  "Print a YAML cheat sheet of modes and commands",
				Action: quickstartAction,
			},
		},
	}
}

func quickstartAction(c *cli.Context) error {
	_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
	return err
}
