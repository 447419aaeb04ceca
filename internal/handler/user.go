package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"etuition/internal/model"
	"etuition/internal/service"
)

const roleCacheTTL = 5 * time.Minute

type UserHandler struct {
	svc   *service.UserService
	cache Cache
}

func NewUserHandler(svc *service.UserService, cache Cache) *UserHandler {
	return &UserHandler{svc: svc, cache: cache}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, identity, admin func(http.Handler) http.Handler) {
	r.Post("/users", h.UpsertUser)
	r.Get("/users/{email}/role", h.GetRole)
	r.Get("/user-profile", h.GetProfile)

	r.With(identity).Patch("/user-profile/{email}", h.UpdateProfile)

	r.With(identity, admin).Group(func(r chi.Router) {
		r.Get("/users/all", h.ListUsers)
		r.Patch("/users/{id}", h.AdminUpdateUser)
		r.Patch("/admin/users/{id}/role", h.AdminSetRole)
		r.Delete("/users/{id}", h.DeleteUser)
	})
}

func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	var input model.UpsertUserInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.svc.UpsertUser(r.Context(), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !result.IsNewUser {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":   "user exists in database",
			"user":      result.User,
			"isNewUser": false,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"insertedId": result.User.Id,
		"message":    "New user created successfully in database",
		"user":       result.User,
		"isNewUser":  true,
	})
}

func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email, err := parsePathParam(r, "email")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	key := roleCacheKey(email)
	if data, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	role, err := h.svc.GetRole(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	data := []byte(`{"role":"` + role.String() + `"}`)
	h.cache.Set(r.Context(), key, data, roleCacheTTL)
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetProfile(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email, err := parsePathParam(r, "email")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var input model.UpdateProfileInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), email, &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"message":      "Profile successfully updated.",
		"user":         user,
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var input model.AdminUpdateUserInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.svc.AdminUpdateUser(r.Context(), id, &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), roleCacheKey(user.Email))
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"message":      "User information successfully updated.",
		"user":         user,
	})
}

func (h *UserHandler) AdminSetRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var body struct {
		Role model.Role `json:"role"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.svc.AdminSetRole(r.Context(), id, body.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), roleCacheKey(user.Email))
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.svc.DeleteUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), roleCacheKey(user.Email))
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"deletedCount": 1,
		"message":      "User account successfully deleted.",
	})
}

func roleCacheKey(email string) string {
	return "role:" + email
}
