package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"etuition/internal/model"
	"etuition/internal/service"
)

type ApplicationHandler struct {
	svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) RegisterRoutes(r chi.Router, identity, admin func(http.Handler) http.Handler) {
	r.Post("/applications", h.Apply)
	r.Get("/applications/{id}", h.GetApplication)
	r.Get("/tutor/applications/{email}", h.ListByTutor)
	r.Get("/ongoing-tuitions", h.ListOngoing)
	r.Patch("/applications/{id}", h.UpdateApplication)
	r.Patch("/applications/reject/{id}", h.RejectApplication)
	r.Delete("/applications/{id}", h.DeleteApplication)

	r.With(identity, admin).Group(func(r chi.Router) {
		r.Get("/applications", h.ListApplications)
		r.Get("/all-applications/pending", h.ListPending)
	})
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var input model.ApplyInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	app, err := h.svc.Apply(r.Context(), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"insertedId":  app.Id,
		"message":     "Application successfully submitted!",
		"application": app,
	})
}

func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	app, err := h.svc.GetApplication(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListApplications(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListPendingApplications(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ListByTutor(w http.ResponseWriter, r *http.Request) {
	email, err := parsePathParam(r, "email")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	apps, err := h.svc.ListByTutor(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ListOngoing(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListOngoing(r.Context(), r.URL.Query().Get("email"), r.URL.Query().Get("role"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var input model.UpdateApplicationInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	app, err := h.svc.UpdateApplication(r.Context(), id, &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"message":      "Application successfully updated.",
		"application":  app,
	})
}

func (h *ApplicationHandler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	app, err := h.svc.RejectApplication(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"message":      "Application status updated to Rejected",
		"application":  app,
	})
}

func (h *ApplicationHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.DeleteApplication(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"deletedCount": 1,
		"message":      "Application successfully deleted.",
	})
}
