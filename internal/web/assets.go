package web

import (
	"embed"
	"fmt"
	iofs "io/fs"
	"net/http"

	"github.com/desertthunder/songbubbles/internal/server"
)

//go:embed static/*
var staticFiles embed.FS

var _ server.Handler = (*assets)(nil)

// assets serves the embedded script and stylesheet plus the liveness probe.
//
// It is mounted ahead of the rate limiter so health checks and page assets are never throttled.
type assets struct {
	static http.Handler
}

func newAssets() (*assets, error) {
	sub, err := iofs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static content: %w", err)
	}
	return &assets{static: http.StripPrefix("/static/", http.FileServerFS(sub))}, nil
}

func (a *assets) Routes() []string {
	return []string{"/static/", "/healthz"}
}

func (a *assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path == "/healthz" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
		return
	}
	a.static.ServeHTTP(w, r)
}
