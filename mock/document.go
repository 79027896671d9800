package mock

import (
	"context"

	"github.com/fwojciec/docnav"
)

var _ docnav.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docnav.DocumentService.
type DocumentService struct {
	CreateDocumentFn           func(ctx context.Context, doc *docnav.IndexedDocument) error
	CreateDocumentsFn          func(ctx context.Context, docs []*docnav.IndexedDocument) error
	FindDocumentByHrefFn       func(ctx context.Context, href string) (*docnav.IndexedDocument, error)
	FindDocumentsFn            func(ctx context.Context, filter docnav.DocumentFilter) ([]*docnav.IndexedDocument, error)
	DeleteDocumentFn           func(ctx context.Context, href string) error
	DeleteDocumentsBySectionFn func(ctx context.Context, section string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *docnav.IndexedDocument) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) CreateDocuments(ctx context.Context, docs []*docnav.IndexedDocument) error {
	return s.CreateDocumentsFn(ctx, docs)
}

func (s *DocumentService) FindDocumentByHref(ctx context.Context, href string) (*docnav.IndexedDocument, error) {
	return s.FindDocumentByHrefFn(ctx, href)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter docnav.DocumentFilter) ([]*docnav.IndexedDocument, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, href string) error {
	return s.DeleteDocumentFn(ctx, href)
}

func (s *DocumentService) DeleteDocumentsBySection(ctx context.Context, section string) error {
	return s.DeleteDocumentsBySectionFn(ctx, section)
}
