package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/etree"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, docnav.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	if c.Check != "" {
		return c.check(deps, docs)
	}

	if c.BaseURL == "" {
		err := docnav.Errorf(docnav.EINVALID, "base URL is required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	if err := etree.WriteSitemap(deps.Stdout, c.BaseURL, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	return nil
}

// check compares the hrefs in a sitemap file against the indexed corpus
// and reports documents missing from the sitemap and sitemap entries with
// no matching document.
func (c *SitemapCmd) check(deps *Dependencies, docs []*docnav.IndexedDocument) error {
	f, err := os.Open(c.Check)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer f.Close()

	hrefs, err := etree.ReadSitemap(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	listed := make(map[string]bool, len(hrefs))
	for _, href := range hrefs {
		listed[href] = true
	}
	indexed := make(map[string]bool, len(docs))
	for _, doc := range docs {
		indexed[doc.Href] = true
	}

	var missing, unknown []string
	for _, doc := range docs {
		if !listed[doc.Href] {
			missing = append(missing, doc.Href)
		}
	}
	for _, href := range hrefs {
		if !indexed[href] {
			unknown = append(unknown, href)
		}
	}
	sort.Strings(missing)
	sort.Strings(unknown)

	if len(missing) == 0 && len(unknown) == 0 {
		fmt.Fprintf(deps.Stdout, "Sitemap matches the index (%d documents).\n", len(docs))
		return nil
	}

	for _, href := range missing {
		fmt.Fprintf(deps.Stdout, "missing from sitemap: %s\n", href)
	}
	for _, href := range unknown {
		fmt.Fprintf(deps.Stdout, "not in index: %s\n", href)
	}
	return docnav.Errorf(docnav.EINVALID, "sitemap does not match the index")
}
