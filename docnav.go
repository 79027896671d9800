// Package docnav provides the navigation core for a documentation site:
// markdown outline extraction with URL-safe anchors, an in-memory document
// search engine with debounced interactive queries, and corpus ingestion
// from local markdown and HTML trees.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, bleve/, gemini/).
package docnav
