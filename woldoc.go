// Package woldoc extracts structured data (study questions, footnotes and
// scripture citations) from the documents of an online publication library.
// It walks the anchors of a document, resolves each anchor's reference
// payload, classifies and flattens it to text, and deduplicates repeated
// citations within a section.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package woldoc
