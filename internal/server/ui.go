package server

import (
	_ "embed"
	"net/http"
)

// The UI is a single static page; recording happens in the browser and the
// page only talks to the JSON API.
//
//go:embed assets/index.html
var indexHTML []byte

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}
