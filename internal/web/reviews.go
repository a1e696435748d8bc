package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

type myReviewsData struct {
	Reviews    []backend.Review
	LoadFailed bool
}

// MyReviews lists the current user's reviews with edit and delete forms.
func (h *Handlers) MyReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data myReviewsData
	reviews, err := h.backend.Reviews.ListMine(ctx)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error fetching user reviews: %v", err)
		data.LoadFailed = true
	}
	data.Reviews = reviews

	h.render.Render(w, http.StatusOK, "reviews", h.page(r, "My Reviews", data))
}

// UpdateReview edits one of the user's reviews; the redirect refetches
// the list.
func (h *Handlers) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/reviews", http.StatusSeeOther)
		return
	}

	var req backend.UpdateReviewRequest
	if v := r.FormValue("rating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil || rating < 1 || rating > 5 {
			h.flash.Error(ctx, sessionID, "Rating must be between 1 and 5")
			http.Redirect(w, r, "/reviews", http.StatusSeeOther)
			return
		}
		req.Rating = &rating
	}
	if v := r.FormValue("title"); v != "" {
		req.Title = &v
	}
	if v := r.FormValue("comment"); v != "" {
		req.Comment = &v
	}

	if err := h.backend.Reviews.Update(ctx, id, req); err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error updating review %d: %v", id, err)
		h.flash.Error(ctx, sessionID, backend.ValidationMessage(err, "Error updating review"))
	} else {
		h.flash.Success(ctx, sessionID, "Review updated!")
	}
	http.Redirect(w, r, "/reviews", http.StatusSeeOther)
}

// DeleteReview removes one of the user's reviews.
func (h *Handlers) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/reviews", http.StatusSeeOther)
		return
	}

	if err := h.backend.Reviews.Delete(ctx, id); err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error deleting review %d: %v", id, err)
		h.flash.Error(ctx, sessionID, "Error deleting review")
	} else {
		h.flash.Success(ctx, sessionID, "Review deleted")
	}
	http.Redirect(w, r, "/reviews", http.StatusSeeOther)
}
