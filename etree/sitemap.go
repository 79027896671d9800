// Package etree reads and writes sitemap XML for the indexed corpus.
package etree

import (
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/docnav"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// WriteSitemap writes a sitemap urlset for the given documents. Each
// document contributes one url entry whose loc joins baseURL with the
// document's href; lastmod comes from IndexedAt when set.
func WriteSitemap(w io.Writer, baseURL string, docs []*docnav.IndexedDocument) error {
	base, err := url.Parse(baseURL)
	if err != nil {
		return docnav.Errorf(docnav.EINVALID, "invalid base URL: %v", err)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, d := range docs {
		href := d.Href
		if href == "" {
			href = docnav.BuildHref(d.Section, d.Document)
		}

		loc := *base
		loc.Path = strings.TrimSuffix(base.Path, "/") + href

		entry := urlset.CreateElement("url")
		entry.CreateElement("loc").SetText(loc.String())
		if !d.IndexedAt.IsZero() {
			entry.CreateElement("lastmod").SetText(d.IndexedAt.UTC().Format(time.RFC3339))
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return err
	}
	return nil
}

// ReadSitemap parses a sitemap urlset and returns the hrefs of its
// entries, with the scheme and host stripped. Entries without a loc are
// skipped.
func ReadSitemap(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, docnav.Errorf(docnav.EINVALID, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docnav.Errorf(docnav.EINVALID, "empty sitemap XML")
	}
	if root.Tag != "urlset" {
		return nil, docnav.Errorf(docnav.EINVALID, "unexpected root element %q", root.Tag)
	}

	var hrefs []string
	for _, entry := range root.SelectElements("url") {
		loc := entry.SelectElement("loc")
		if loc == nil {
			continue
		}
		raw := strings.TrimSpace(loc.Text())
		if raw == "" {
			continue
		}

		parsed, err := url.Parse(raw)
		if err != nil {
			return nil, docnav.Errorf(docnav.EINVALID, "invalid loc %q: %v", raw, err)
		}
		hrefs = append(hrefs, parsed.Path)
	}

	if hrefs == nil {
		hrefs = []string{}
	}
	return hrefs, nil
}
