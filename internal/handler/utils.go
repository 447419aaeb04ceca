package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"etuition/internal/errdefs"
	"etuition/internal/logging"
)

var ErrBadRequest = errors.New("bad request")

// Cache holds serialized response bodies for hot read routes.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, errdefs.ErrValidation),
		errors.Is(err, errdefs.ErrMissingParameter),
		errors.Is(err, errdefs.ErrPaymentNotCompleted):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError maps a service failure to a JSON error payload. Internal
// detail never leaves the process; known sentinels keep their message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := mapErr(err)

	if logger, ok := logging.GetFromContext(r.Context()); ok {
		if statusCode == http.StatusInternalServerError {
			logger.Error(r.Context(), "request failed", zap.String("path", r.URL.Path), zap.Error(err))
		} else {
			logger.Info(r.Context(), "request rejected", zap.String("path", r.URL.Path), zap.Error(err))
		}
	}

	message := http.StatusText(statusCode)
	for _, sentinel := range []error{
		errdefs.ErrValidation, errdefs.ErrMissingParameter, errdefs.ErrPaymentNotCompleted,
		errdefs.ErrUnauthorized, errdefs.ErrForbidden, errdefs.ErrNotFound, errdefs.ErrAlreadyExists,
	} {
		if errors.Is(err, sentinel) {
			message = sentinel.Error()
			break
		}
	}
	writeErrorJSON(w, statusCode, message)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// writeJSONCached writes the payload and stores the serialized body for
// subsequent hits.
func writeJSONCached(w http.ResponseWriter, r *http.Request, cache Cache, key string, ttl time.Duration, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
	cache.Set(r.Context(), key, data, ttl)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id: %s", ErrBadRequest, val)
	}
	return id, nil
}
