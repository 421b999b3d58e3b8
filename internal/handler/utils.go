package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"workbook_service/internal/errdefs"
	"workbook_service/pkg/ctxdata"
	"workbook_service/pkg/logging"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNoIdentity = errors.New("no identity")
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, errdefs.ErrInvalidRangeFormat),
		errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError logs err and writes it with the matching status. Details of
// server-side failures stay in the log.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	statusCode := mapErr(err)

	if logger, ok := logging.GetFromContext(ctx); ok {
		if statusCode >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.String("path", r.URL.Path), zap.Error(err))
		} else {
			logger.Info(ctx, "request rejected", zap.String("path", r.URL.Path), zap.Int("status", statusCode), zap.Error(err))
		}
	}

	message := http.StatusText(statusCode)
	if statusCode < http.StatusInternalServerError {
		message = err.Error()
	}
	writeErrorJSON(w, statusCode, message)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	writeRaw(w, statusCode, data)
}

func writeRaw(w http.ResponseWriter, statusCode int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// decodeBody keeps range format errors distinguishable from other malformed
// bodies.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, errdefs.ErrInvalidRangeFormat) {
			return err
		}
		return fmt.Errorf("%w: invalid request body: %w", ErrBadRequest, err)
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

func parseIDParam(r *http.Request, key string) (int64, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrBadRequest, key, val)
	}
	return id, nil
}

func userID(r *http.Request) (uuid.UUID, error) {
	id, ok := ctxdata.GetUserID(r.Context())
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrNoIdentity
	}
	return id, nil
}
