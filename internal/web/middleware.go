package web

import (
	"log"
	"net/http"
)

// recoverer is the render-error boundary: a panic anywhere in a handler
// or template renders the error page instead of tearing the connection
// down, and never takes the process with it.
func (h *Handlers) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[Web] Panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				h.render.Render(w, http.StatusInternalServerError, "error",
					pageData{Title: "Something went wrong"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireLogin redirects signed-out sessions to the login page, matching
// the page-mount guards the views have always had.
func (h *Handlers) requireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.loggedIn(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
