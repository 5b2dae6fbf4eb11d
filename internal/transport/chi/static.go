package chi

import (
	"embed"
	"net/http"

	"go.uber.org/zap"
)

//go:embed static
var staticFS embed.FS

// Index serves the embedded single-page frontend.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		s.logger.Error("static page missing", zap.Error(err))
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
