package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

const htmxRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was issued by htmx
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get(htmxRequestHeader) == "true"
}

// RenderFragment writes component as an HTML response
func RenderFragment(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		// Headers are gone by now; all that is left is to record it
		slog.ErrorContext(r.Context(), "render failed",
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
	}
}

// RenderPage serves a full document through templ's handler
func RenderPage(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

// RedirectBack answers a plain form post by sending the browser to location
func RedirectBack(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// WriteJSON writes payload as JSON with the given status code
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encode json response", slog.Any("err", err))
	}
}
