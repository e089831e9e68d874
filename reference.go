package woldoc

import "context"

// DefaultOrigin is the absolute origin of the content site.
const DefaultOrigin = "https://wol.jw.org"

// UnresolvedReference is substituted for the text of a reference whose
// target could not be fetched or validated.
const UnresolvedReference = "unable to extract reference"

// hrefPrefixLen is the length of the locale prefix ("/es") that site-relative
// anchor hrefs carry and the reference endpoints do not.
const hrefPrefixLen = 3

// Anchor is a link found while scanning a document.
type Anchor struct {
	DisplayText string `json:"displayText" yaml:"displayText"`
	Href        string `json:"href" yaml:"href"`
}

// Reference is the resolved target of an anchor.
type Reference struct {
	SourceHref    string      `json:"sourceHref" yaml:"sourceHref"`
	FetchURL      string      `json:"fetchUrl" yaml:"fetchUrl"`
	Envelope      *Envelope   `json:"envelope,omitempty" yaml:"envelope,omitempty"`
	Kind          ContentKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	ParsedContent string      `json:"parsedContent" yaml:"parsedContent"`
}

// Resolved reports whether the reference carries a valid envelope.
func (r *Reference) Resolved() bool {
	return r.Envelope != nil
}

// Text returns the parsed content, or UnresolvedReference when the
// reference could not be resolved.
func (r *Reference) Text() string {
	if !r.Resolved() {
		return UnresolvedReference
	}
	return r.ParsedContent
}

// FetchURL rewrites a site-relative href to the absolute URL of its reference
// endpoint by replacing the locale prefix with origin.
func FetchURL(origin, href string) string {
	if len(href) < hrefPrefixLen {
		return origin
	}
	return origin + href[hrefPrefixLen:]
}

// ReferenceResolver resolves anchors into references.
type ReferenceResolver interface {
	// Resolve fetches, validates, classifies and extracts the anchor's target.
	// It never fails; an unresolved reference has a nil Envelope.
	Resolve(ctx context.Context, anchor Anchor) *Reference
}
