package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"etuition/internal/model"
	"etuition/internal/service"
)

const (
	approvedListingCacheKey = "tuitions:approved"
	approvedListingCacheTTL = 30 * time.Second
)

type TuitionHandler struct {
	svc   *service.TuitionService
	cache Cache
}

func NewTuitionHandler(svc *service.TuitionService, cache Cache) *TuitionHandler {
	return &TuitionHandler{svc: svc, cache: cache}
}

func (h *TuitionHandler) RegisterRoutes(r chi.Router, identity, admin func(http.Handler) http.Handler) {
	r.Post("/post-new-tuition", h.CreatePost)
	r.Get("/all-approved-tuitions", h.ListApproved)
	r.Get("/all-tuition/{id}", h.GetApprovedPost)

	r.With(identity).Group(func(r chi.Router) {
		r.Get("/tuition-posts", h.ListPosts)
		r.Put("/post-new-tuition/{id}", h.UpdatePost)
		r.Delete("/post-new-tuition/{id}", h.DeletePost)
	})

	r.With(identity, admin).Group(func(r chi.Router) {
		r.Get("/tuitions/all", h.ListAllPosts)
		r.Patch("/tuitions/status/{id}", h.SetStatus)
	})
}

func (h *TuitionHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input model.CreatePostInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"insertedId": post.Id,
		"message":    "Tuition post created successfully and is pending approval.",
		"post":       post,
	})
}

func (h *TuitionHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *TuitionHandler) ListAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context(), "")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// ListApproved is the public landing-page listing, served from cache when
// fresh. Short TTL keeps review decisions visible quickly.
func (h *TuitionHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	if data, ok := h.cache.Get(r.Context(), approvedListingCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	posts, err := h.svc.ListApprovedPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSONCached(w, r, h.cache, approvedListingCacheKey, approvedListingCacheTTL, posts)
}

func (h *TuitionHandler) GetApprovedPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.svc.GetApprovedPost(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *TuitionHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var input model.UpdatePostInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.svc.UpdatePost(r.Context(), id, &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), approvedListingCacheKey)
	writeJSON(w, http.StatusOK, post)
}

func (h *TuitionHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), approvedListingCacheKey)
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"deletedCount": 1,
	})
}

func (h *TuitionHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var body struct {
		Status model.PostStatus `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.svc.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), approvedListingCacheKey)
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"message":      "Tuition status updated to " + post.Status.String() + ".",
		"post":         post,
	})
}
