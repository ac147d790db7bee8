package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// errorResponse is the JSON error envelope returned by every failing endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the JSON error envelope with the given status code.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// notFound writes a 404. The caller supplies the human-readable message
// (e.g. "vehicle not found") because the handler is the layer that knows
// what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "not_found", message)
}

// validationError writes a 400 with the field-level message extracted from
// the wrapped domain.ErrValidation error.
func validationError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, "validation_error", validationMessage(err))
}

// badRequest writes a 400 for a request rejected before reaching the service
// layer (e.g. missing or malformed body).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "validation_error", message)
}

// internalError logs the error with the request context and writes a generic
// 500 — internal details never leak into responses.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

// validationMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "validation error: name is required" → "name is required".
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
