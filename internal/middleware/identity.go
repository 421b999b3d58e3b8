package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workbook_service/pkg/ctxdata"
	"workbook_service/pkg/logging"
)

// NewIdentityMiddleware trusts the X-User-Id header set by the upstream
// gateway after authentication.
func NewIdentityMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			header := r.Header.Get("X-User-Id")
			if header == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no user id header", zap.String("path", r.URL.Path))
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := uuid.Parse(header)
			if err != nil || userID == uuid.Nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "invalid user id header", zap.String("path", r.URL.Path))
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxdata.WithUserID(ctx, userID)))
		})
	}
}
