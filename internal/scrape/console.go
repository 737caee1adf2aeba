package scrape

import (
	"fmt"
	"io"
	"strings"
)

const (
	banner     = "\n\t\t  \" ONLINE WEB SCRAPER MADE IT EASY \"\n\n"
	urlPrompt  = "\nENTER THE URL LINK OF THE PAGE TO START WEB SCRAPING : "
	modePrompt = "Enter Your choice to Extract the Data from \"1/2/3/4\" : "
	newLinkMsg = "*** Please Provide a New Link to Start Scraping ***\n"

	invalidURLMsg   = "\n\"Sorry! The input is not a valid URL. Please provide a valid URL.\"\n" + newLinkMsg
	inaccessibleMsg = "\"Sorry! The page you are trying to scrape is not accessible and its data cannot be extracted!\"\n" + newLinkMsg
	requestErrorMsg = "\n\"Sorry! There was an error while attempting to make a request. Please provide a valid URL.\"\n" + newLinkMsg
	parseErrorMsg   = "\n\"Sorry! The page could not be parsed.\"\n" + newLinkMsg

	readyMsg = "\"Congratulations! Here we go, Your Webpage is ready for Scraping, Extracting all the Data...\"\n"
	menuMsg  = "\n\nWhat are you expecting to print? Give me the detail by Typing \"1/2/3/4\"\n" +
		"1. Extract full HTML Code\n" +
		"2. Extract all the Text from the WebPage\n" +
		"3. Extract Only Headings from the Webpage\n" +
		"4. Extract Links from the Webpage\n\n"

	invalidChoiceMsg = "Please Enter a Valid Choice, Try again and Type between \"1/2/3/4\"\nHope we will be Getting you this time :)\n"

	markupIntro = "\nYep! Here is the Full HTML CODE extracted from Webpage : %s\n\n"
	markupOutro = "\n THE CODE ENDS HERE! After Copying is Done * For More Scraping continue with the Same Procedure below *,\n"

	textIntro = "\nNice Choice! Here we go, Extracting all the Text from the WebPage... It may take some while\n\n" +
		"NOTE : We extract all the Data which is in text format from the WebPage,\n" +
		"but not the Structure and Order of the Text as laid out on the Website.\n" +
		"Here's all the Text extracted from : %s\n\n"

	textOutro = "\n\nThe Above is the unordered Collection of the Text! as mentioned in the NOTE,\n" +
		"Copy your required text carefully from the above Data!\n\n" +
		"\n THE TEXT ENDS HERE! After Copying is Done * For More Scraping continue with the Same Procedure below *,\n"

	headingsIntro = "\nLet's Get all the Headings from the WebPage... Working on it\n\n" +
		"NOTE : Only the main Headings, <h1> and <h2>, are extracted from the WebPage,\n" +
		"not the Structure and Order of the Text as laid out on the Website.\n" +
		"Here's all the Headings extracted from : %s\n\n"

	linksIntro = "\nLet's Get all the Links from the WebPage... Working on it\n\n"
)

// console writes the session's user-facing text.
type console struct {
	out  io.Writer
	rule string
}

func newConsole(out io.Writer, width int, char string) *console {
	return &console{out: out, rule: strings.Repeat(char, width)}
}

func (c *console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// hr prints a horizontal rule.
func (c *console) hr() {
	fmt.Fprintln(c.out, c.rule)
}
