package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/web-scraper/internal/scrape"
)

func main() {
	app := scrape.NewApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
