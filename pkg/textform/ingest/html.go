// Package ingest normalizes pasted rich content into the plain text
// the engine analyzes.
package ingest

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements whose boundaries become line breaks so list
// and paragraph structure survives the conversion.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"tr": {}, "blockquote": {}, "pre": {}, "section": {}, "article": {},
}

// skippedTags are elements whose text content is never analysis input.
var skippedTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "head": {}, "iframe": {},
}

var multiBlankRe = regexp.MustCompile(`\n{3,}`)

// LooksLikeHTML is a cheap sniff for markup input: an opening tag near
// the start of the buffer.
func LooksLikeHTML(s string) bool {
	head := strings.TrimSpace(s)
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.HasPrefix(head, "<") && strings.Contains(head, ">")
}

// StripHTML converts markup into plain text, keeping block boundaries
// as newlines and list items as bullet lines.
func StripHTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skippedTags[n.Data]; skip {
				return
			}
			if n.Data == "li" {
				b.WriteString("- ")
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(collapseSpaces(n.Data))
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type == html.ElementNode {
			if _, block := blockTags[n.Data]; block {
				b.WriteString("\n")
			}
		}
	}
	walk(doc)

	out := multiBlankRe.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out), nil
}

// collapseSpaces folds runs of whitespace inside a text node into
// single spaces, preserving nothing of the source indentation.
func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	joined := strings.Join(fields, " ")
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\t") {
		joined = " " + joined
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\t") {
		joined += " "
	}
	return joined
}
