package route

import (
	"net/url"

	"golang.org/x/text/unicode/norm"
)

// NormalizePath prepares a request path for lookup. Empty paths become "/"
// and the path is brought to Unicode NFC so that visually identical paths
// resolve to the same route.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if path[0] != '/' {
		path = "/" + path
	}
	return norm.NFC.String(path)
}

// decodeSegments unescapes every segment of an escaped path. An escaped
// slash stays inside its segment. Reports false for an invalid escape.
func decodeSegments(parts []string) ([]string, bool) {
	decoded := make([]string, len(parts))
	for i, p := range parts {
		s, err := url.PathUnescape(p)
		if err != nil {
			return nil, false
		}
		decoded[i] = norm.NFC.String(s)
	}
	return decoded, true
}
