package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type indexPage struct {
	Summary types.Summary
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summaryService.Summary(r.Context())
	if err != nil {
		s.internalError(w, r, "summary", err)
		return
	}
	s.renderPage(w, r, "index.html", indexPage{Summary: sum})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "dashboard.html", nil)
}

// renderPage executes into a buffer first so a template error still yields
// a clean 500 instead of a half-written page.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.internalError(w, r, "render "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
