// Package web serves the embedded marketing landing page.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var landingHTML []byte

func Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(landingHTML)
}
