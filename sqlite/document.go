package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docnav"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docnav.DocumentService = (*DocumentService)(nil)

// DocumentService implements docnav.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateDocument adds a document to the corpus. If the href already
// exists, the stored document is updated in place; unchanged content is a
// no-op. Either way the caller's doc is populated with the stored ID,
// content hash, and timestamp.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docnav.IndexedDocument) error {
	if doc.Href == "" {
		doc.Href = docnav.BuildHref(doc.Section, doc.Document)
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ContentHash = hashContent(doc.Content)

	existing, err := s.FindDocumentByHref(ctx, doc.Href)
	if err != nil && docnav.ErrorCode(err) != docnav.ENOTFOUND {
		return err
	}

	if existing != nil {
		doc.ID = existing.ID
		if existing.ContentHash == doc.ContentHash {
			doc.IndexedAt = existing.IndexedAt
			return nil
		}
		return s.update(ctx, doc)
	}

	doc.ID = uuid.New().String()
	doc.IndexedAt = time.Now().UTC()

	tags, err := marshalStrings(doc.Tags)
	if err != nil {
		return err
	}
	matches, err := marshalStrings(doc.Matches)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, href, title, description, section, document, tags, matches, content, content_hash, position, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Href, doc.Title, doc.Description, doc.Section, doc.Document,
		tags, matches, doc.Content, doc.ContentHash, doc.Position, doc.IndexedAt.Format(time.RFC3339))

	return err
}

// update refreshes an existing row after a content change.
func (s *DocumentService) update(ctx context.Context, doc *docnav.IndexedDocument) error {
	doc.IndexedAt = time.Now().UTC()

	tags, err := marshalStrings(doc.Tags)
	if err != nil {
		return err
	}
	matches, err := marshalStrings(doc.Matches)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, description = ?, section = ?, document = ?, tags = ?, matches = ?,
			content = ?, content_hash = ?, position = ?, indexed_at = ?
		WHERE href = ?
	`, doc.Title, doc.Description, doc.Section, doc.Document, tags, matches,
		doc.Content, doc.ContentHash, doc.Position, doc.IndexedAt.Format(time.RFC3339), doc.Href)

	return err
}

// CreateDocuments adds multiple documents in a batch.
func (s *DocumentService) CreateDocuments(ctx context.Context, docs []*docnav.IndexedDocument) error {
	for _, doc := range docs {
		if err := s.CreateDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

const documentColumns = "id, href, title, description, section, document, tags, matches, content, content_hash, position, indexed_at"

// scanDocument reads one document row.
func scanDocument(scan func(dest ...any) error) (*docnav.IndexedDocument, error) {
	var doc docnav.IndexedDocument
	var tags, matches, indexedAt string

	if err := scan(&doc.ID, &doc.Href, &doc.Title, &doc.Description, &doc.Section, &doc.Document,
		&tags, &matches, &doc.Content, &doc.ContentHash, &doc.Position, &indexedAt); err != nil {
		return nil, err
	}

	var err error
	if doc.Tags, err = unmarshalStrings(tags, "tags"); err != nil {
		return nil, err
	}
	if doc.Matches, err = unmarshalStrings(matches, "matches"); err != nil {
		return nil, err
	}
	if doc.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocumentByHref retrieves a document by its navigable path.
func (s *DocumentService) FindDocumentByHref(ctx context.Context, href string) (*docnav.IndexedDocument, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE href = ?", href)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docnav.Errorf(docnav.ENOTFOUND, "document %q not found", href)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter in corpus order.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docnav.DocumentFilter) ([]*docnav.IndexedDocument, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Section != nil {
		query.WriteString(" AND section = ?")
		args = append(args, *filter.Section)
	}
	if filter.Tag != nil {
		// Tags are stored as a JSON array of strings.
		query.WriteString(` AND tags LIKE '%"' || ? || '"%'`)
		args = append(args, *filter.Tag)
	}

	query.WriteString(" ORDER BY position ASC, href ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docnav.IndexedDocument
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document by href.
func (s *DocumentService) DeleteDocument(ctx context.Context, href string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE href = ?", href)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return docnav.Errorf(docnav.ENOTFOUND, "document %q not found", href)
	}

	return nil
}

// DeleteDocumentsBySection removes all documents in a section.
func (s *DocumentService) DeleteDocumentsBySection(ctx context.Context, section string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE section = ?", section)
	return err
}
