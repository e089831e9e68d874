package woldoc

import "context"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Output is one serialized extraction result.
type Output struct {
	SourceURL string
	Kind      string
	Format    string
	Data      []byte
}

// Validate returns an error if the output contains invalid fields.
func (o *Output) Validate() error {
	if o.SourceURL == "" {
		return Errorf(EINVALID, "output source URL required")
	}
	if o.Format != FormatJSON && o.Format != FormatYAML {
		return Errorf(EINVALID, "unsupported output format %q", o.Format)
	}
	return nil
}

// OutputStore persists outputs with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type OutputStore interface {
	Save(ctx context.Context, out *Output) error
	Commit() error
	Abort() error
}
