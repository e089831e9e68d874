package woldoc

import (
	"context"
	"fmt"
	"net/http"
)

// Gateway retrieves raw documents from the content site.
// Implementations never return an error: transport failures are reported
// through the status code and a descriptive body.
type Gateway interface {
	// Fetch returns the body and HTTP status for the URL. A status other
	// than http.StatusOK means the body is a failure description.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, status int)
}

// FetchError describes a non-200 gateway result.
type FetchError struct {
	URL    string
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: status %d: %s", e.URL, e.Status, e.Body)
}

// FetchDocument fetches a document and turns a non-200 result into a
// *FetchError for callers that cannot substitute a value.
func FetchDocument(ctx context.Context, gw Gateway, url string) (string, error) {
	body, status := gw.Fetch(ctx, url)
	if status != http.StatusOK {
		return "", &FetchError{URL: url, Status: status, Body: body}
	}
	return body, nil
}
