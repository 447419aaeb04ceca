package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"etuition/internal/ctxdata"
	"etuition/internal/errdefs"
	"etuition/internal/model"
	"etuition/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router, identity, admin func(http.Handler) http.Handler) {
	r.Post("/create-checkout-session", h.CreateCheckoutSession)
	r.Patch("/payment-success", h.ConfirmPayment)
	r.Post("/payments", h.RecordPayment)
	r.Get("/payments/student", h.StudentPayments)
	r.Get("/tutor-revenue-history", h.TutorRevenue)

	r.With(identity).Get("/payments", h.ListOwnPayments)

	r.With(identity, admin).Group(func(r chi.Router) {
		r.Get("/admin-total-earnings", h.Earnings)
		r.Delete("/payments/{id}", h.DeletePayment)
	})
}

func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var input model.CheckoutInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	url, err := h.svc.CreateCheckoutSession(r.Context(), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ConfirmPayment(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"transactionId": result.TransactionId,
		"trackingId":    result.TrackingId,
	})
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var input model.RecordPaymentInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	payment, err := h.svc.RecordPayment(r.Context(), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) StudentPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svc.ListStudentPayments(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// ListOwnPayments only serves the verified caller's own history.
func (h *PaymentHandler) ListOwnPayments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	verified, ok := ctxdata.GetUserEmail(r.Context())
	if !ok {
		writeServiceError(w, r, errdefs.ErrUnauthorized)
		return
	}
	if email == "" {
		email = verified
	}
	if email != verified {
		writeServiceError(w, r, errdefs.ErrForbidden)
		return
	}

	payments, err := h.svc.ListStudentPayments(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) TutorRevenue(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.TutorRevenue(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *PaymentHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	page := parseQueryInt(r, "page", 0)
	limit := parseQueryInt(r, "limit", 10)

	report, err := h.svc.Earnings(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.DeletePayment(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"deletedCount": 1,
	})
}

func parseQueryInt(r *http.Request, key string, fallback int64) int64 {
	val, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return fallback
	}
	return val
}
