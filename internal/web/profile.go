package web

import (
	"log"
	"net/http"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

// ProfilePage renders the session's cached profile.
func (h *Handlers) ProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	profile, ok := h.sessions.Store.Profile(ctx, sessionID)
	if !ok {
		profile = session.Profile{Username: "User", Email: "user@example.com"}
	}

	h.render.Render(w, http.StatusOK, "profile", h.page(r, "My Profile", profile))
}

// ProfileEditPage renders the edit form pre-filled from the session.
func (h *Handlers) ProfileEditPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	profile, ok := h.sessions.Store.Profile(ctx, sessionID)
	if !ok {
		profile = session.Profile{Username: "User", Email: "user@example.com"}
	}

	h.render.Render(w, http.StatusOK, "profile_edit", h.page(r, "Edit Profile", profile))
}

// ProfileSave persists the edited profile to the session store and
// broadcasts the change so the nav picks up the new name. The profile is
// never sent to the backend; see DESIGN.md.
func (h *Handlers) ProfileSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	profile := session.Profile{
		Username:    r.FormValue("username"),
		Email:       r.FormValue("email"),
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		PhoneNumber: r.FormValue("phone_number"),
		Address:     r.FormValue("address"),
	}

	if err := h.sessions.Store.SaveProfile(ctx, sessionID, profile); err != nil {
		log.Printf("[Web] Failed to save profile: %v", err)
		h.flash.Error(ctx, sessionID, "Error saving profile")
		http.Redirect(w, r, "/profile/edit", http.StatusSeeOther)
		return
	}

	h.broadcast.Publish(ctx, session.Change{SessionID: sessionID, Kind: session.ChangeProfile})
	h.flash.Success(ctx, sessionID, "Profile updated successfully!")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
