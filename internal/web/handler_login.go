package web

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

const sessionCookie = "galleria_session"

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: skip straight to the gallery view.
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		http.Redirect(w, r, "/galleries", http.StatusSeeOther)
		return
	}

	if err := s.renderPage(w, map[string]any{"ActiveNav": ""}, "base.html", "pages/login.html"); err != nil {
		log.Printf("render page error: %v", err)
	}
}

// handleLogin is cosmetic: no credential check happens, the form just opens
// a session so the navigation shows a signed-in state.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    uuid.NewString(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/galleries", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
