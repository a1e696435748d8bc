package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

type authFormData struct {
	Error    string
	Username string
	Email    string
}

// LoginPage renders the login form.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, http.StatusOK, "login", h.page(r, "Sign In", authFormData{}))
}

// Login authenticates against the backend, stores the backend session
// cookie and the login flag, seeds the cached profile, and broadcasts the
// auth change.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	username := r.FormValue("username")
	password := r.FormValue("password")

	cookie, err := h.backend.Auth.Login(ctx, backend.LoginRequest{Username: username, Password: password})
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		msg := "Login failed"
		if errors.Is(err, backend.ErrUnreachable) {
			msg = "Unable to connect to server. Please check if the backend is running."
		} else if errors.Is(err, backend.ErrAuthExpired) {
			msg = "Invalid credentials"
		} else {
			msg = backend.ValidationMessage(err, msg)
		}
		data := authFormData{Error: msg, Username: username}
		h.render.Render(w, http.StatusOK, "login", h.page(r, "Sign In", data))
		return
	}

	store := h.sessions.Store
	if err := store.SetBackendCookie(ctx, sessionID, cookie); err != nil {
		log.Printf("[Web] Failed to store backend cookie: %v", err)
	}
	if err := store.SetLoggedIn(ctx, sessionID, true); err != nil {
		log.Printf("[Web] Failed to set login flag: %v", err)
	}
	// Seed the cached profile; edits stay session-local (see DESIGN.md).
	if _, ok := store.Profile(ctx, sessionID); !ok {
		profile := session.Profile{
			Username: username,
			Email:    username + "@example.com",
		}
		if err := store.SaveProfile(ctx, sessionID, profile); err != nil {
			log.Printf("[Web] Failed to seed profile: %v", err)
		}
	}

	h.broadcast.Publish(ctx, session.Change{SessionID: sessionID, Kind: session.ChangeAuth})
	h.flash.Success(ctx, sessionID, "Welcome back, "+username+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, http.StatusOK, "register", h.page(r, "Create Account", authFormData{}))
}

// Register creates a backend account and sends the user to the login page.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	req := backend.RegisterRequest{
		Username:        r.FormValue("username"),
		Email:           r.FormValue("email"),
		FirstName:       r.FormValue("first_name"),
		LastName:        r.FormValue("last_name"),
		Password:        r.FormValue("password"),
		PasswordConfirm: r.FormValue("password_confirm"),
	}

	if err := h.backend.Auth.Register(ctx, req); err != nil {
		if backend.IsCanceled(err) {
			return
		}
		msg := backend.ValidationMessage(err, "Registration failed")
		if errors.Is(err, backend.ErrUnreachable) {
			msg = "Unable to connect to server. Please check if the backend is running."
		}
		data := authFormData{Error: msg, Username: req.Username, Email: req.Email}
		h.render.Render(w, http.StatusOK, "register", h.page(r, "Create Account", data))
		return
	}

	h.flash.Success(ctx, sessionID, "Account created! Please sign in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout ends the backend session, clears the session's auth state, and
// broadcasts the change. Backend failures still clear local state, the
// same way the browser client always dropped its flags.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	if err := h.backend.Auth.Logout(ctx); err != nil && !backend.IsCanceled(err) {
		log.Printf("[Web] Logout error: %v", err)
	}

	if err := h.sessions.Store.ClearAuth(ctx, sessionID); err != nil {
		log.Printf("[Web] Failed to clear session auth: %v", err)
	}
	if err := h.sessions.Store.InvalidateCartCount(ctx, sessionID); err != nil {
		log.Printf("[Web] Failed to invalidate cart count: %v", err)
	}

	h.broadcast.Publish(ctx, session.Change{SessionID: sessionID, Kind: session.ChangeAuth})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
