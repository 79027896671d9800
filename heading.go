package docnav

import (
	"regexp"
	"strings"
)

// Heading represents a heading in a markdown document.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	ID    string `json:"id"`
}

// headingRe matches markdown headings: # through ######.
var headingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

// codeBlockRe matches fenced code blocks.
var codeBlockRe = regexp.MustCompile("(?s)```.*?```")

// ExtractHeadings parses markdown and returns all headings (H1-H6) in
// document order. Each heading carries a URL-safe slug ID derived from its
// title. Headings with identical titles share the same ID; callers that
// need uniqueness must disambiguate themselves.
//
// Headings inside fenced code blocks are skipped.
func ExtractHeadings(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	// Remove code blocks to avoid matching # in code
	cleaned := removeCodeBlocks(markdown)

	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	for _, match := range matches {
		title := strings.TrimSpace(match[2])
		headings = append(headings, Heading{
			Level: len(match[1]),
			Title: title,
			ID:    Slugify(title),
		})
	}

	return headings
}

// removeCodeBlocks removes fenced code blocks from markdown.
func removeCodeBlocks(s string) string {
	return codeBlockRe.ReplaceAllString(s, "")
}

// Slugify creates a URL- and DOM-safe identifier from a title.
// It lowercases the input, drops everything outside [a-z0-9\s-], collapses
// whitespace and hyphen runs into single hyphens, and trims hyphens from
// both ends.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
