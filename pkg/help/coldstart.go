package help

const ColdstartYAML = `# web-scraper Quick Start

interactive:
  start: "web-scraper"
  steps:
    - "Enter a full URL, e.g. https://example.com"
    - "Pick what to print: 1/one, 2/two, 3/three or 4/four (any case)"
    - "After printing you are asked for a new URL"
    - "Quit with Ctrl-D (end of input) or Ctrl-C"

modes:
  "1": "Full HTML, re-serialized by the parser"
  "2": "Text of every element (nested text repeats once per ancestor)"
  "3": "Text of <h1> and <h2> headings"
  "4": "href of every <a> that has one"

commands:
  one_shot: |
    web-scraper extract --url "https://example.com" --mode links
  json_output: |
    web-scraper extract --url "https://example.com" --mode headings --format json
  yaml_output: |
    web-scraper extract --url "https://example.com" --mode text --format yaml
  narrow_rules: |
    web-scraper --rule-width 80 --rule-char "="
  debug_logging: |
    web-scraper --verbose extract --url "https://example.com"

error_behavior:
  - "Malformed URLs: rejected before any request is made"
  - "Non-200 status: page reported as not accessible, nothing is parsed"
  - "Connection/DNS failures: reported as a request error"
  - "extract exit codes: 0=success, 1=fetch failed, 2=usage error"
`
