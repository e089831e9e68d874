package woldoc

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// URLSet is a membership set used to skip URLs already processed in a pass.
// Test reports whether url was added.
type URLSet interface {
	Add(url string)
	Test(url string) bool
}
