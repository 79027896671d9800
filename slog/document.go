package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docnav"
)

// Ensure LoggingDocumentService implements docnav.DocumentService.
var _ docnav.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with operation logging.
type LoggingDocumentService struct {
	next   docnav.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next docnav.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *docnav.IndexedDocument) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create document",
			"href", doc.Href,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

func (s *LoggingDocumentService) CreateDocuments(ctx context.Context, docs []*docnav.IndexedDocument) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocuments(ctx, docs)
}

func (s *LoggingDocumentService) FindDocumentByHref(ctx context.Context, href string) (doc *docnav.IndexedDocument, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find document by href",
			"href", href,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocumentByHref(ctx, href)
}

func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter docnav.DocumentFilter) (docs []*docnav.IndexedDocument, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, href string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete document",
			"href", href,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDocument(ctx, href)
}

func (s *LoggingDocumentService) DeleteDocumentsBySection(ctx context.Context, section string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete documents by section",
			"section", section,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDocumentsBySection(ctx, section)
}
