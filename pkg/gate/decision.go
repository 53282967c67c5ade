package gate

import (
	"strings"

	"github.com/dmitrymomot/mobilegate/pkg/classifier"
)

const (
	// APIPrefix is the path namespace of API routes.
	APIPrefix = "/api"
	// StaticPrefix is the path namespace of static assets.
	StaticPrefix = "/static"
	// UnsupportedPath is the route of the "mobile not supported" document.
	UnsupportedPath = "/mobile-not-supported"
)

// Decision is the outcome of gating one request.
type Decision int

const (
	// PassThrough lets the request reach its handler unchanged.
	PassThrough Decision = iota
	// ServeUnsupportedPage answers with the unsupported document.
	ServeUnsupportedPage
	// RedirectToUnsupported sends the client to UnsupportedPath.
	RedirectToUnsupported
)

func (d Decision) String() string {
	switch d {
	case ServeUnsupportedPage:
		return "serve_unsupported_page"
	case RedirectToUnsupported:
		return "redirect_to_unsupported"
	default:
		return "pass_through"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Decide returns the gate decision for path and c. Rules are evaluated in
// order and the first match wins:
//
//  1. exempt paths (see IsExempt) pass through without looking at c;
//  2. UnsupportedPath is served the unsupported document;
//  3. mobile requests are redirected to UnsupportedPath;
//  4. everything else passes through.
func Decide(path string, c classifier.Classification) Decision {
	switch {
	case IsExempt(path):
		return PassThrough
	case path == UnsupportedPath:
		return ServeUnsupportedPage
	case c == classifier.Mobile:
		return RedirectToUnsupported
	default:
		return PassThrough
	}
}

// IsExempt reports whether path is never gated: it equals or lies under
// APIPrefix or StaticPrefix, or contains a "." anywhere (a file-like path).
func IsExempt(path string) bool {
	return underPrefix(path, APIPrefix) ||
		underPrefix(path, StaticPrefix) ||
		strings.Contains(path, ".")
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
