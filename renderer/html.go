package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlPage wraps the converted document body in a minimal standalone
// page. The styling keeps tables readable when the file is opened or
// printed from a browser.
const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Georgia, serif; max-width: 46em; margin: 2em auto; color: #222; }
table { border-collapse: collapse; width: 100%%; margin: 1em 0; }
th, td { border-bottom: 1px solid #ddd; padding: 0.4em 0.8em; text-align: left; }
th:not(:first-child), td:not(:first-child) { text-align: right; }
hr { border: none; border-top: 1px solid #999; margin-top: 3em; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the document as a standalone HTML page, receipt or
// invoice depending on the paid state.
func HTML(d *Document) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(d)), &body); err != nil {
		return "", fmt.Errorf("could not convert document to HTML: %w", err)
	}
	title := d.L.Invoice + " " + d.Number
	if d.Receipt {
		title = d.L.Receipt + " " + d.Number
	}
	return fmt.Sprintf(htmlPage, html.EscapeString(title), body.String()), nil
}
