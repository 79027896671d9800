// Package fs exports the indexed corpus to Markdown files on disk.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docnav"
)

// HrefToPath converts a document href to a relative file path.
// Example: /guides/getting-started → guides/getting-started.md
func HrefToPath(href string) string {
	path := strings.TrimPrefix(href, "/")
	if path == "" {
		return "index.md"
	}
	return path + ".md"
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *docnav.IndexedDocument) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("href: ")
	b.WriteString(doc.Href)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	if doc.Description != "" {
		b.WriteString("\ndescription: ")
		b.WriteString(doc.Description)
	}
	if !doc.IndexedAt.IsZero() {
		b.WriteString("\nindexed: ")
		b.WriteString(doc.IndexedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Exporter writes the corpus to a directory with atomic replace
// semantics. Documents are written to baseDir/name.tmp and the final
// directory only appears on Commit, so readers never observe a partial
// export.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Save writes one document to the staging directory.
func (e *Exporter) Save(ctx context.Context, doc *docnav.IndexedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	href := doc.Href
	if href == "" {
		href = docnav.BuildHref(doc.Section, doc.Document)
	}

	fullPath := filepath.Join(e.tempDir(), filepath.FromSlash(HrefToPath(href)))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}

// Commit atomically replaces the final directory with the staged export.
func (e *Exporter) Commit() error {
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the staged export.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}
