package woldoc

// TextExtractor converts embedded HTML fragments into plain text.
type TextExtractor interface {
	// Extract returns the plain text of fragment using the strategy for kind.
	// Malformed fragments yield an empty string rather than an error.
	Extract(kind ContentKind, fragment string) string
}
