package mock

import "github.com/fwojciec/docnav"

var _ docnav.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docnav.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docnav.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docnav.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docnav.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of docnav.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetaFn func(html string) (*docnav.PageMeta, error)
}

func (e *MetadataExtractor) ExtractMeta(html string) (*docnav.PageMeta, error) {
	return e.ExtractMetaFn(html)
}
