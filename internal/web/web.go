// Package web embeds the single-page force dashboard.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns the dashboard assets rooted at static/.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Handler serves the dashboard page and its assets.
func Handler() http.Handler {
	return http.FileServer(FS())
}
