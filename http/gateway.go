// Package http provides an HTTP-based implementation of woldoc.Gateway.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/woldoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Request headers the site expects from a browser.
const (
	DefaultUserAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:126.0) Gecko/20100101 Firefox/126.0"
	DefaultAcceptLanguage = "es-ES,es;q=0.5"
	acceptHeader          = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
)

// Failure bodies returned for transport errors.
const (
	ConnectionErrorBody = "Connection error occurred"
	TimeoutErrorBody    = "Timeout error occurred"
	RequestErrorBody    = "Request error occurred"
)

// Ensure Gateway implements woldoc.Gateway at compile time.
var _ woldoc.Gateway = (*Gateway)(nil)

// Gateway retrieves documents over HTTP. It never returns an error:
// failures are mapped to a status code and a descriptive body.
type Gateway struct {
	client         *http.Client
	timeout        time.Duration
	limiter        woldoc.DomainLimiter
	userAgent      string
	acceptLanguage string
	referer        string
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// WithLimiter rate limits requests per host.
func WithLimiter(l woldoc.DomainLimiter) Option {
	return func(g *Gateway) {
		g.limiter = l
	}
}

// WithAcceptLanguage sets the Accept-Language header.
func WithAcceptLanguage(lang string) Option {
	return func(g *Gateway) {
		g.acceptLanguage = lang
	}
}

// WithReferer sets the Referer header.
func WithReferer(referer string) Option {
	return func(g *Gateway) {
		g.referer = referer
	}
}

// NewGateway creates a new HTTP-based Gateway.
func NewGateway(opts ...Option) *Gateway {
	g := &Gateway{
		timeout:        DefaultFetchTimeout,
		userAgent:      DefaultUserAgent,
		acceptLanguage: DefaultAcceptLanguage,
		referer:        woldoc.DefaultOrigin + "/",
	}
	for _, opt := range opts {
		opt(g)
	}

	g.client = &http.Client{
		Timeout: g.timeout,
	}

	return g
}

// Fetch retrieves the body at url together with its status code. Every 2xx
// response is reported as 200.
func (g *Gateway) Fetch(ctx context.Context, rawURL string) (string, int) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return RequestErrorBody, http.StatusInternalServerError
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", g.acceptLanguage)
	req.Header.Set("Referer", g.referer)

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx, req.URL.Host); err != nil {
			return transportFailure(err)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer resp.Body.Close()

	// Any 2xx is a success and is reported as 200.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Sprintf("HTTP error: %d - %s", resp.StatusCode, http.StatusText(resp.StatusCode)), resp.StatusCode
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(err)
	}

	return string(body), http.StatusOK
}

// transportFailure maps a transport error to a failure body and 5xx status.
func transportFailure(err error) (string, int) {
	var netErr net.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return TimeoutErrorBody, http.StatusGatewayTimeout
	case errors.As(err, &opErr), errors.As(err, &dnsErr):
		return ConnectionErrorBody, http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		return ConnectionErrorBody, http.StatusServiceUnavailable
	}
	return RequestErrorBody, http.StatusInternalServerError
}
