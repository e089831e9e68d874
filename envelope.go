package woldoc

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Publication codes carried in an envelope's article classes.
const (
	WatchtowerCode = "pub-w"
	BibleTextCode  = "pub-nwtsty"
)

var (
	watchtowerRe = wholeWord(WatchtowerCode)
	bibleTextRe  = wholeWord(BibleTextCode)
)

func wholeWord(code string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(code) + `\b`)
}

// ContentKind identifies the extraction strategy for an embedded fragment.
type ContentKind string

// Content kinds in classification priority order.
const (
	KindWatchtower ContentKind = "watchtower"
	KindBibleText  ContentKind = "bibleText"
	KindGeneric    ContentKind = "generic"
)

// Classify selects the content kind for the given publication flags.
// Watchtower wins over Bible text when both are set.
func Classify(isWatchtower, isBibleText bool) ContentKind {
	switch {
	case isWatchtower:
		return KindWatchtower
	case isBibleText:
		return KindBibleText
	default:
		return KindGeneric
	}
}

// ValidationReason describes why a payload is not a reference envelope.
type ValidationReason string

// Validation failure reasons.
const (
	InvalidFormat  ValidationReason = "invalid format"
	MissingItems   ValidationReason = "missing items"
	MissingContent ValidationReason = "missing content"
	MissingClasses ValidationReason = "missing article classes"
)

// ValidationError is returned by ParseEnvelope for malformed payloads.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return "invalid reference envelope: " + string(e.Reason)
}

// Envelope is a validated reference payload.
type Envelope struct {
	Content      string `json:"content" yaml:"content"`
	Classes      string `json:"articleClasses" yaml:"articleClasses"`
	IsWatchtower bool   `json:"isWatchtower" yaml:"isWatchtower"`
	IsBibleText  bool   `json:"isBibleText" yaml:"isBibleText"`

	// Record is the raw first item of the payload. It is only read by
	// callers that need extra fields and is never serialized.
	Record map[string]any `json:"-" yaml:"-"`
}

// Kind returns the content kind of the envelope.
func (e *Envelope) Kind() ContentKind {
	return Classify(e.IsWatchtower, e.IsBibleText)
}

// ParseEnvelope validates raw fetched text and extracts its envelope fields.
// It never panics; every failure is a *ValidationError.
func ParseEnvelope(raw string) (*Envelope, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &ValidationError{Reason: InvalidFormat}
	}

	// Well-formed JSON that is not an object has no items.
	payload, _ := decoded.(map[string]any)
	items, ok := payload["items"].([]any)
	if !ok || len(items) == 0 {
		return nil, &ValidationError{Reason: MissingItems}
	}
	item, ok := items[0].(map[string]any)
	if !ok {
		return nil, &ValidationError{Reason: MissingContent}
	}

	content, _ := item["content"].(string)
	if content == "" {
		return nil, &ValidationError{Reason: MissingContent}
	}
	classes, _ := item["articleClasses"].(string)
	if classes == "" {
		return nil, &ValidationError{Reason: MissingClasses}
	}

	return &Envelope{
		Content:      content,
		Classes:      classes,
		IsWatchtower: watchtowerRe.MatchString(classes),
		IsBibleText:  bibleTextRe.MatchString(classes),
		Record:       item,
	}, nil
}

// Field returns a field of the raw record as a string, or "" if absent.
// Numeric fields are formatted without a fractional part.
func (e *Envelope) Field(key string) string {
	switch v := e.Record[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// ChapterRange returns the chapter bounds recorded in the envelope.
// Both camelCase and snake_case field names are accepted.
func (e *Envelope) ChapterRange() (first, last int, ok bool) {
	first, okFirst := e.intField("firstChapter", "first_chapter")
	last, okLast := e.intField("lastChapter", "last_chapter")
	if !okFirst {
		return 0, 0, false
	}
	if !okLast {
		last = first
	}
	return first, last, true
}

func (e *Envelope) intField(keys ...string) (int, bool) {
	for _, key := range keys {
		switch v := e.Record[key].(type) {
		case float64:
			return int(v), true
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
