// Package handle derives collection handles from legacy PLP URLs. The handle
// is the join key between incoming marketing copy and the destination catalog
// export: the last non-empty path segment of the URL with a trailing ".html"
// removed, e.g. "https://shop.example.com/diamonds-engagement-rings/tacori.html"
// yields "tacori".
package handle

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoHandle is returned when a URL is empty or has no usable path segment
// (bare domain, path of only slashes, segment that is only the stripped
// extension).
var ErrNoHandle = errors.New("no path segment to derive a handle from")

// Extract derives a handle from a PLP URL. Only the path is consulted; query
// strings and fragments are ignored. Only an exact ".html" suffix is
// stripped; other extensions are part of the handle. The result never
// contains a "/".
func Extract(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrNoHandle
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", raw, err)
	}

	// Trailing slashes and doubled separators produce empty segments; the
	// handle is the last non-empty one.
	var last string
	for _, seg := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if seg != "" {
			last = seg
		}
	}
	if last == "" {
		return "", ErrNoHandle
	}

	// A segment of exactly ".html" strips to nothing.
	h := strings.TrimSuffix(last, ".html")
	if h == "" {
		return "", ErrNoHandle
	}
	return h, nil
}
