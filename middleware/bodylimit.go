package middleware

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/jogger/core/handler"
)

// Common size constants for convenience
const (
	KB int64 = 1024
	MB       = 1024 * KB
	GB       = 1024 * MB
)

// DefaultBodyLimit is used when no positive limit is given.
const DefaultBodyLimit = 4 * MB

// BodyLimit answers 413 to requests declaring a body larger than maxSize and
// caps reads of the body to maxSize bytes.
//
// Form bodies are parsed before interceptors run and are bounded separately
// by web.DefaultMaxMemory.
func BodyLimit(maxSize int64) handler.Interceptor {
	if maxSize <= 0 {
		maxSize = DefaultBodyLimit
	}

	return handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
		raw := req.Raw()
		if raw.ContentLength > maxSize {
			res.SetStatus(http.StatusRequestEntityTooLarge)
			return res.WriteString(fmt.Sprintf("Request body too large. Maximum allowed: %s", formatBytes(maxSize)))
		}
		if raw.Body != nil && raw.Body != http.NoBody {
			raw.Body = http.MaxBytesReader(nil, raw.Body, maxSize)
		}
		return chain.Proceed()
	})
}

// formatBytes formats bytes into a human-readable string
func formatBytes(bytes int64) string {
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
