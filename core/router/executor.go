package router

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/jogger/core/asset"
	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/route"
)

// executeRoute runs the route's interceptors and handler once, returning any
// failure untouched.
func executeRoute(rt *route.Route, req handler.Request, res handler.Response) error {
	return newChain(rt.Interceptors(), rt.Handler(), req, res).start()
}

// executeAsset serves a static asset for GET and HEAD requests. Anything it
// cannot serve leaves the response status at not found.
func executeAsset(loader asset.Loader, req handler.Request, res handler.Response) error {
	method := req.Method()
	if method != http.MethodGet && method != http.MethodHead {
		res.NotFound()
		return nil
	}

	a, err := loader.Load(req.Context(), req.Path())
	if errors.Is(err, asset.ErrNotFound) || errors.Is(err, asset.ErrInvalidPath) {
		res.NotFound()
		return nil
	}
	if err != nil {
		return err
	}
	defer a.Content.Close()

	if !a.ModTime.IsZero() {
		mod := a.ModTime.UTC().Truncate(time.Second)
		if ims := req.Header("If-Modified-Since"); ims != "" {
			if t, err := http.ParseTime(ims); err == nil && !mod.After(t) {
				res.SetStatus(http.StatusNotModified)
				return nil
			}
		}
		res.SetHeader("Last-Modified", mod.Format(http.TimeFormat))
	}

	contentType := a.ContentType
	if contentType == "" {
		contentType = asset.ContentType(a.Name)
	}
	res.SetContentType(contentType)
	if a.Length >= 0 {
		res.SetHeader("Content-Length", strconv.FormatInt(a.Length, 10))
	}
	res.SetStatus(http.StatusOK)

	if method == http.MethodHead {
		return nil
	}
	return res.Stream(a.Content)
}
