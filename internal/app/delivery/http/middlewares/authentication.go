package middlewares

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a caller and stores it on the
// request context. Every failure is a 401.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))

		caller, err := m.AuthUsecase.Authenticate(r.Context(), token)
		if err != nil {
			if exceptions.StatusCodeOf(err) != constvars.StatusUnauthorized && exceptions.StatusCodeOf(err) < constvars.StatusInternalServerError {
				err = exceptions.ErrTokenInvalidOrExpired(err)
			}
			m.Log.Warn("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.ContextWithCaller(r.Context(), caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after Authenticate.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := utils.GetCallerFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if caller.Role != role {
				utils.LogSecurityEvent(m.Log, "role_denied", utils.GetRequestID(r.Context()),
					zap.String(constvars.LoggingCallerIDKey, caller.UserID),
					zap.String(constvars.LoggingCallerRoleKey, caller.Role),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
