package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbook_service/pkg/ctxdata"
	"workbook_service/pkg/logging"
)

func TestIdentityMiddleware(t *testing.T) {
	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ctxdata.GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := NewIdentityMiddleware()(next)

	t.Run("Valid", func(t *testing.T) {
		id := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Id", id.String())
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, id, seen)
	})

	for name, header := range map[string]string{"Missing": "", "Garbage": "abc", "Nil": uuid.Nil.String()} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("X-User-Id", header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var traceID string
	var hasLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, _ = ctxdata.GetTraceID(r.Context())
		_, hasLogger = logging.GetFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	h := NewLoggingMiddleware(logging.NewNop())(next)

	t.Run("GeneratesTraceID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.True(t, hasLogger)
		require.NotEmpty(t, traceID)
		assert.Equal(t, traceID, rec.Header().Get("X-Trace-Id"))
	})

	t.Run("KeepsIncomingTraceID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-Id", "upstream-trace")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, "upstream-trace", traceID)
		assert.Equal(t, "upstream-trace", rec.Header().Get("X-Trace-Id"))
	})
}
