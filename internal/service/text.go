package service

import (
	"regexp"
	"strings"
)

var (
	brTagRe  = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTagRe = regexp.MustCompile(`</?[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// StripHTML converts <br> tags to newlines and drops every other tag.
// Card fields may carry raw HTML from the host application.
func StripHTML(text string) string {
	text = brTagRe.ReplaceAllString(text, "\n")
	text = anyTagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// normalizeAnswer canonicalizes an answer for equality checks: newlines
// removed, whitespace collapsed, lowercased.
func normalizeAnswer(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ToLower(strings.TrimSpace(s))
	return spaceRe.ReplaceAllString(s, " ")
}
