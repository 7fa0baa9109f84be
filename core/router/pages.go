package router

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// statusPage renders the minimal HTML page used by the default handlers.
func statusPage(status int, detail string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(http.StatusText(status))
		_, err := io.WriteString(w, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>"+
			title+"</title></head><body><h1>"+title+"</h1>")
		if err != nil {
			return err
		}
		if detail != "" {
			if _, err := io.WriteString(w, "<p>"+templ.EscapeString(detail)+"</p>"); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "</body></html>\n")
		return err
	})
}
