package woldoc

import (
	"context"
	"strings"
	"unicode"
)

// Section is the aggregated result of resolving one block of citations.
type Section struct {
	References []SectionEntry `json:"references" yaml:"references"`

	// SharedMnemonicReferences holds the first-seen text of every mnemonic
	// that occurred more than once in the section.
	SharedMnemonicReferences map[string]string `json:"sharedMnemonicReferences" yaml:"sharedMnemonicReferences"`
}

// SectionEntry is one citation occurrence in a section.
type SectionEntry struct {
	Mnemonic    string      `json:"mnemonic" yaml:"mnemonic"`
	RefContents string      `json:"refContents" yaml:"refContents"`
	SourceHref  string      `json:"sourceHref,omitempty" yaml:"sourceHref,omitempty"`
	FetchURL    string      `json:"fetchUrl,omitempty" yaml:"fetchUrl,omitempty"`
	Kind        ContentKind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Footnote is a resolved footnote marker. Footnotes are not deduplicated:
// their markers ("*", "a", ...) are not citation labels.
type Footnote struct {
	Marker     string `json:"marker" yaml:"marker"`
	SourceHref string `json:"sourceHref" yaml:"sourceHref"`
	Contents   string `json:"contents" yaml:"contents"`
}

// SectionAggregator resolves an ordered block of anchors into a Section.
type SectionAggregator interface {
	Aggregate(ctx context.Context, anchors []Anchor) *Section
}

// SharedReference returns the indirection marker written in place of the
// text of a repeated mnemonic.
func SharedReference(mnemonic string) string {
	return "SEE: sharedMnemonicReferences[" + mnemonic + "]"
}

// NormalizeMnemonic turns an anchor's display text into a citation label.
// Commas and semicolons are stripped. A label without a space that follows
// another mnemonic is a bare verse or chapter number, so it inherits the
// book prefix (the first token) of previous: "21" after "Matt 5:20"
// becomes "Matt 21". An empty label stays empty.
func NormalizeMnemonic(displayText, previous string) string {
	label := strings.NewReplacer(",", "", ";", "").Replace(displayText)
	label = strings.TrimSpace(label)

	if label == "" || previous == "" || strings.ContainsFunc(label, unicode.IsSpace) {
		return label
	}
	fields := strings.Fields(previous)
	if len(fields) == 0 {
		return label
	}
	return fields[0] + " " + label
}
