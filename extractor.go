package docnav

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Description is the page description extracted from metadata,
	// empty when the page declares none.
	Description string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}

// PageMeta holds presentation metadata read from an HTML page's head.
type PageMeta struct {
	Title       string
	Description string
	Keywords    []string
}

// MetadataExtractor reads page metadata used to populate IndexedDocument
// fields when ingesting HTML sources.
type MetadataExtractor interface {
	// ExtractMeta parses HTML and returns its metadata.
	// Missing tags yield zero values, not errors.
	ExtractMeta(html string) (*PageMeta, error)
}
