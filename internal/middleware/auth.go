package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"etuition/internal/auth"
	"etuition/internal/ctxdata"
	"etuition/internal/logging"
	"etuition/internal/model"
)

// RoleLookup resolves the stored role for a verified email. Missing users
// resolve to the default role, never an error.
type RoleLookup interface {
	GetRole(ctx context.Context, email string) (model.Role, error)
}

// NewIdentity verifies the bearer credential and attaches the verified email
// to the request context. Collaborators behind it can trust ctxdata.
func NewIdentity(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if header == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no authorization header", zap.String("path", r.URL.Path))
				}
				writeAuthError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "malformed authorization header", zap.String("path", r.URL.Path))
				}
				writeAuthError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}
			token = strings.TrimSpace(token)
			email, err := verifier.VerifyToken(ctx, token)
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "token verification failed", zap.String("path", r.URL.Path))
				}
				writeAuthError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxdata.WithUserEmail(ctx, email)))
		})
	}
}

// NewRequireRole gates a route on the caller's stored role. It assumes an
// identity middleware already ran; the two are composed per route so they can
// be tested independently.
func NewRequireRole(roles RoleLookup, required model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email, ok := ctxdata.GetUserEmail(ctx)
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			role, err := roles.GetRole(ctx, email)
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Error(ctx, "role lookup failed", zap.String("path", r.URL.Path), zap.Error(err))
				}
				writeAuthError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				return
			}
			if role != required {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "role mismatch",
						zap.String("path", r.URL.Path),
						zap.String("role", role.String()),
						zap.String("required", required.String()),
					)
				}
				writeAuthError(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxdata.WithUserRole(ctx, role.String())))
		})
	}
}

func writeAuthError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}
