package transport

import (
	"net/url"
	"strings"
)

// Path renders an API path from segments, escaping each one. All endpoint
// paths in this module go through here instead of ad hoc concatenation.
func Path(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return strings.Join(escaped, "/")
}

// WithQuery appends query parameters to a path.
func WithQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
