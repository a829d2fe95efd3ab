package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appdepthchart "github.com/preston-bernstein/depth-chart-service/internal/app/depthchart"
	"github.com/preston-bernstein/depth-chart-service/internal/http/middleware"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
)

const msgInternal = "internal error"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, map[string]string{"error": message}, logger)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body map[string]string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.HeaderRequestID)
	}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps service errors onto status codes: validation
// failures are 400 with the offending field, cancellations 503 and anything
// else a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if vErr, ok := appdepthchart.AsValidationError(err); ok {
		writeErrorBody(w, r, http.StatusBadRequest, map[string]string{
			"error": vErr.Error(),
			"field": vErr.Field,
		}, logger)
		return
	}
	log := loggerFromContext(r, logger)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logging.Warn(log, "request abandoned", "err", err)
		writeError(w, r, http.StatusServiceUnavailable, "request canceled", logger)
		return
	}
	logging.Error(log, "request failed", err)
	writeError(w, r, http.StatusInternalServerError, msgInternal, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
