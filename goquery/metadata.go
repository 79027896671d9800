// Package goquery reads page metadata from HTML documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docnav"
)

// Ensure MetadataExtractor implements docnav.MetadataExtractor at compile time.
var _ docnav.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads title, description, and keywords from an HTML
// page's head. It prefers Open Graph tags over plain meta tags since
// documentation generators keep those more accurate.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMeta parses HTML and returns its metadata.
// Missing tags yield zero values, not errors.
func (e *MetadataExtractor) ExtractMeta(html string) (*docnav.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docnav.Errorf(docnav.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &docnav.PageMeta{
		Title:       e.title(doc),
		Description: e.description(doc),
		Keywords:    e.keywords(doc),
	}

	return meta, nil
}

func (e *MetadataExtractor) title(doc *goquery.Document) string {
	if content, ok := metaContent(doc, `meta[property="og:title"]`); ok {
		return content
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func (e *MetadataExtractor) description(doc *goquery.Document) string {
	if content, ok := metaContent(doc, `meta[property="og:description"]`); ok {
		return content
	}
	if content, ok := metaContent(doc, `meta[name="description"]`); ok {
		return content
	}
	return ""
}

func (e *MetadataExtractor) keywords(doc *goquery.Document) []string {
	content, ok := metaContent(doc, `meta[name="keywords"]`)
	if !ok {
		return nil
	}

	var keywords []string
	for _, part := range strings.Split(content, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// metaContent returns the trimmed content attribute of the first element
// matching the selector, and whether it was non-empty.
func metaContent(doc *goquery.Document, selector string) (string, bool) {
	content, exists := doc.Find(selector).First().Attr("content")
	if !exists {
		return "", false
	}
	content = strings.TrimSpace(content)
	return content, content != ""
}
