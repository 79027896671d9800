package docnav

import (
	"context"
	"time"
)

// IndexedDocument is the search engine's unit of retrieval, corresponding
// to one documentation page.
type IndexedDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Section     string    `json:"section"`  // category slug, e.g. "cloud"
	Document    string    `json:"document"` // leaf slug, e.g. "getting-started"
	Href        string    `json:"href"`     // navigable path, unique per document
	Tags        []string  `json:"tags,omitempty"`
	Matches     []string  `json:"matches,omitempty"` // retrieval-boosting keywords
	Content     string    `json:"content,omitempty"` // markdown body
	ContentHash string    `json:"contentHash,omitempty"`
	Position    int       `json:"position"` // index order within the corpus
	IndexedAt   time.Time `json:"indexedAt"`
}

// BuildHref reconstructs a document's navigable path from its section and
// leaf slugs. Documents in the root section live directly under "/".
func BuildHref(section, document string) string {
	if section == "" {
		return "/" + document
	}
	return "/" + section + "/" + document
}

// Validate returns an error if the document contains invalid fields.
func (d *IndexedDocument) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Document == "" {
		return Errorf(EINVALID, "document leaf slug required")
	}
	if d.Href != "" && d.Href != BuildHref(d.Section, d.Document) {
		return Errorf(EINVALID, "document href %q does not match section %q and slug %q", d.Href, d.Section, d.Document)
	}
	return nil
}

// DocumentService represents a service for managing the document corpus.
type DocumentService interface {
	// CreateDocument adds a document to the corpus. A document whose href
	// already exists is updated in place; re-creating one with unchanged
	// content is a no-op.
	CreateDocument(ctx context.Context, doc *IndexedDocument) error

	// CreateDocuments adds multiple documents in a batch.
	CreateDocuments(ctx context.Context, docs []*IndexedDocument) error

	// FindDocumentByHref retrieves a document by its navigable path.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByHref(ctx context.Context, href string) (*IndexedDocument, error)

	// FindDocuments retrieves documents matching the filter in corpus order.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*IndexedDocument, error)

	// DeleteDocument permanently removes a document by href.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, href string) error

	// DeleteDocumentsBySection removes all documents in a section.
	DeleteDocumentsBySection(ctx context.Context, section string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID      *string `json:"id"`
	Section *string `json:"section"`
	Tag     *string `json:"tag"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
