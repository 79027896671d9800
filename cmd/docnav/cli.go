package main

import (
	"context"
	"io"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/ingest"
	"github.com/fwojciec/docnav/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents docnav.DocumentService
	Ingester  *ingest.Ingester
	Searcher  docnav.Searcher
	Asker     docnav.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service operations to stderr"`

	Index   IndexCmd   `cmd:"" help:"Index a documentation directory"`
	Search  SearchCmd  `cmd:"" help:"Search the indexed corpus"`
	Toc     TocCmd     `cmd:"" help:"Print the table of contents for a document"`
	List    ListCmd    `cmd:"" help:"List indexed documents"`
	Sitemap SitemapCmd `cmd:"" help:"Write a sitemap for the indexed corpus"`
	Export  ExportCmd  `cmd:"" help:"Export the indexed corpus to Markdown files"`
	Delete  DeleteCmd  `cmd:"" help:"Delete indexed documents"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about the indexed documentation"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dir         string `arg:"" help:"Directory of Markdown and HTML files"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent parse limit"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search query"`
	Ranked  bool   `short:"r" help:"Rank results with the full-text index"`
	Limit   int    `short:"l" default:"10" help:"Maximum number of results"`
	Section string `short:"s" help:"Restrict results to a section"`
	Content bool   `help:"Print the full content of matching documents"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Href string `arg:"" help:"Document href, e.g. /guides/getting-started"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Section string `short:"s" help:"Restrict listing to a section"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	BaseURL string `arg:"" optional:"" help:"Base URL for sitemap entries, e.g. https://docs.example.com"`
	Check   string `help:"Verify an existing sitemap file against the index instead of writing one"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" help:"Destination directory"`
	Name string `default:"corpus" help:"Name of the export directory"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Href    string `arg:"" optional:"" help:"Document href to delete"`
	Section string `short:"s" help:"Delete every document in a section"`
	Force   bool   `help:"Confirm deletion"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query    string `arg:"" help:"Search query selecting context documents"`
	Question string `arg:"" help:"Question to ask about the documentation"`
}
