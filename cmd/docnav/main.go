package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/bleve"
	"github.com/fwojciec/docnav/gemini"
	"github.com/fwojciec/docnav/goquery"
	"github.com/fwojciec/docnav/htmltomarkdown"
	"github.com/fwojciec/docnav/ingest"
	"github.com/fwojciec/docnav/memory"
	docslog "github.com/fwojciec/docnav/slog"
	"github.com/fwojciec/docnav/sqlite"
	"github.com/fwojciec/docnav/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// DocumentService for end-to-end testing.
	DocumentService docnav.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docnav"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docnav --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCNAV_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		m.DocumentService = docslog.NewLoggingDocumentService(m.DocumentService, logger)
	}
	deps.DB = m.DB
	deps.Documents = m.DocumentService

	if cmd == "index" {
		deps.Ingester = &ingest.Ingester{
			Documents:   m.DocumentService,
			Extractor:   trafilatura.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Metadata:    goquery.NewMetadataExtractor(),
			Concurrency: cli.Index.Concurrency,
		}
	}

	if cmd == "search" || cmd == "ask" {
		searcher, closeSearcher, err := m.buildSearcher(ctx, cmd == "ask" || cli.Search.Ranked)
		if err != nil {
			return err
		}
		if closeSearcher != nil {
			defer closeSearcher()
		}
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			searcher = docslog.NewLoggingSearcher(searcher, logger)
		}
		deps.Searcher = searcher
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, deps.Searcher,
			gemini.WithTokenBudget(tokenCounter, askTokenBudget))
	}

	return kongCtx.Run(deps)
}

// buildSearcher loads the corpus and returns either a ranked full-text
// searcher or the plain substring index. The returned close func is nil
// for the substring index.
func (m *Main) buildSearcher(ctx context.Context, ranked bool) (docnav.Searcher, func() error, error) {
	if !ranked {
		idx, err := memory.Load(ctx, m.DocumentService)
		if err != nil {
			return nil, nil, err
		}
		return idx, nil, nil
	}

	docs, err := m.DocumentService.FindDocuments(ctx, docnav.DocumentFilter{})
	if err != nil {
		return nil, nil, err
	}
	searcher, err := bleve.NewSearcher(docs)
	if err != nil {
		return nil, nil, err
	}
	return searcher, searcher.Close, nil
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

// askTokenBudget caps the documentation context sent to the model.
const askTokenBudget = 200000

func defaultDBPath() string {
	if path := os.Getenv("DOCNAV_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docnav.db"
	}
	dir := filepath.Join(home, ".docnav")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docnav.db")
}
