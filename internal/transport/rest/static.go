package rest

import (
	"net/http"
	"path/filepath"
)

// StaticHandler serves the uploaded photo directory and the front-end
// bundle. Any GET that no API route claimed falls through to the SPA entry
// file so client-side routing keeps working.
type StaticHandler struct {
	imagesDir string
	staticDir string
	images    http.Handler
}

func NewStaticHandler(imagesDir, staticDir string) *StaticHandler {
	return &StaticHandler{
		imagesDir: imagesDir,
		staticDir: staticDir,
		images:    http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))),
	}
}

func (s *StaticHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	s.images.ServeHTTP(w, r)
}

func (s *StaticHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}
