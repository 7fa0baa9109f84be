package asset

import (
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("asset not found")
	ErrInvalidPath   = errors.New("invalid asset path")
	ErrInvalidConfig = errors.New("invalid asset loader configuration")
)

// Asset is an opened static file. Callers must close Content.
type Asset struct {
	Name        string
	Content     io.ReadCloser
	Length      int64 // -1 when unknown
	ContentType string
	ModTime     time.Time
}

// Loader resolves a request path to an asset. It returns ErrNotFound when
// no asset exists for name.
type Loader interface {
	Load(ctx context.Context, name string) (*Asset, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc func(ctx context.Context, name string) (*Asset, error)

// Load calls f(ctx, name).
func (f LoaderFunc) Load(ctx context.Context, name string) (*Asset, error) {
	return f(ctx, name)
}

// cleanName turns a request path into a slash-separated relative name.
// Paths escaping the root are rejected.
func cleanName(name string) (string, error) {
	if strings.Contains(name, "\x00") || strings.Contains(name, "\\") {
		return "", ErrInvalidPath
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return "", ErrInvalidPath
		}
	}
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" {
		clean = "."
	}
	return clean, nil
}

// ContentType guesses a media type from the file extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
