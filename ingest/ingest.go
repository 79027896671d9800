// Package ingest loads a documentation corpus from disk into the
// document store.
//
// It walks a directory tree of Markdown and HTML files, derives each
// document's section, slug, and search metadata from the file itself,
// and stores the results through a docnav.DocumentService. HTML files
// pass through the extract-and-convert pipeline first so that every
// stored document carries Markdown content.
package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for href deduplication.
const (
	expectedDocuments = 10000
	falsePositiveRate = 0.01
)

// Ingester loads documents from a corpus directory.
type Ingester struct {
	// Documents receives the ingested documents.
	Documents docnav.DocumentService

	// Extractor and Converter form the HTML pipeline. Both must be set
	// for .html files to be ingested; without them HTML files are skipped.
	Extractor docnav.Extractor
	Converter docnav.Converter

	// Metadata optionally supplies title, description, and tags for
	// HTML files from their head metadata.
	Metadata docnav.MetadataExtractor

	// Concurrency bounds parallel file parsing. Defaults to 10.
	Concurrency int
}

// Result summarizes an ingestion run.
type Result struct {
	// Indexed is the number of documents stored.
	Indexed int

	// Skipped counts files passed over: unsupported extensions,
	// duplicate hrefs, and HTML files without a configured pipeline.
	Skipped int

	// Failed counts files that could not be parsed or stored.
	Failed int
}

type parsed struct {
	position int
	doc      *docnav.IndexedDocument
	skipped  bool
	err      error
}

// IngestDir walks root and ingests every Markdown and HTML file under
// it. Files are parsed concurrently; documents are stored in path
// order so corpus position is deterministic across runs.
func (ing *Ingester) IngestDir(ctx context.Context, root string) (*Result, error) {
	paths, err := collectPaths(root)
	if err != nil {
		return nil, err
	}

	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	results := make([]parsed, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, relPath := range paths {
		g.Go(func() error {
			results[i] = ing.parseFile(gctx, root, relPath, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Store sequentially in path order; the Bloom filter drops
	// duplicate hrefs across source files.
	seen := bloom.NewFilter(expectedDocuments, falsePositiveRate)
	res := &Result{}
	for _, p := range results {
		switch {
		case p.err != nil:
			res.Failed++
			continue
		case p.skipped:
			res.Skipped++
			continue
		}

		if seen.Seen(p.doc.Href) {
			res.Skipped++
			continue
		}

		if err := ing.Documents.CreateDocument(ctx, p.doc); err != nil {
			res.Failed++
			continue
		}

		seen.Add(p.doc.Href)
		res.Indexed++
	}

	return res, nil
}

// collectPaths returns the relative paths of ingestable files under
// root, sorted for deterministic ordering.
func collectPaths(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".html":
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			paths = append(paths, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func (ing *Ingester) parseFile(ctx context.Context, root, relPath string, position int) parsed {
	if err := ctx.Err(); err != nil {
		return parsed{position: position, err: err}
	}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		return parsed{position: position, err: err}
	}

	var doc *docnav.IndexedDocument
	switch strings.ToLower(filepath.Ext(relPath)) {
	case ".md":
		doc, err = ing.parseMarkdown(relPath, string(data))
	case ".html":
		if ing.Extractor == nil || ing.Converter == nil {
			return parsed{position: position, skipped: true}
		}
		doc, err = ing.parseHTML(relPath, string(data))
	}
	if err != nil {
		return parsed{position: position, err: fmt.Errorf("%s: %w", relPath, err)}
	}

	doc.Position = position
	return parsed{position: position, doc: doc}
}

// parseMarkdown builds a document from a Markdown source file. The
// title comes from the first level-1 heading, falling back to the file
// name; the description is the first body paragraph; heading titles
// become search match terms.
func (ing *Ingester) parseMarkdown(relPath, content string) (*docnav.IndexedDocument, error) {
	section, slug := splitCorpusPath(relPath)

	headings := docnav.ExtractHeadings(content)

	title := ""
	var matches []string
	for _, h := range headings {
		if title == "" && h.Level == 1 {
			title = h.Title
		}
		matches = append(matches, h.Title)
	}
	if title == "" {
		title = slug
	}

	return &docnav.IndexedDocument{
		Title:       title,
		Description: firstParagraph(content),
		Section:     section,
		Document:    slug,
		Href:        docnav.BuildHref(section, slug),
		Matches:     matches,
		Content:     content,
	}, nil
}

// parseHTML runs the extract-and-convert pipeline and builds a document
// from the resulting Markdown. Head metadata, when a MetadataExtractor
// is configured, overrides the extracted title and description and
// supplies tags.
func (ing *Ingester) parseHTML(relPath, rawHTML string) (*docnav.IndexedDocument, error) {
	extracted, err := ing.Extractor.Extract(rawHTML)
	if err != nil {
		return nil, err
	}

	markdown, err := ing.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	doc, err := ing.parseMarkdown(relPath, markdown)
	if err != nil {
		return nil, err
	}

	if extracted.Title != "" {
		doc.Title = extracted.Title
	}
	if extracted.Description != "" {
		doc.Description = extracted.Description
	}

	if ing.Metadata != nil {
		meta, err := ing.Metadata.ExtractMeta(rawHTML)
		if err != nil {
			return nil, err
		}
		if meta.Title != "" {
			doc.Title = meta.Title
		}
		if meta.Description != "" {
			doc.Description = meta.Description
		}
		doc.Tags = meta.Keywords
	}

	doc.Content = markdown
	return doc, nil
}

// splitCorpusPath derives the section and document slug from a relative
// corpus path. The first directory component becomes the section; the
// remaining components join into the slug. Root-level files have no
// section.
func splitCorpusPath(relPath string) (section, slug string) {
	trimmed := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	parts := strings.Split(trimmed, "/")
	if len(parts) == 1 {
		return "", docnav.Slugify(parts[0])
	}
	section = docnav.Slugify(parts[0])
	slug = docnav.Slugify(strings.Join(parts[1:], " "))
	return section, slug
}

// firstParagraph returns the first non-heading body line of a Markdown
// document, skipping fenced code blocks.
func firstParagraph(markdown string) string {
	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed
	}
	return ""
}
