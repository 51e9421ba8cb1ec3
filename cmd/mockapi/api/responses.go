package api

import (
	"log/slog"
	"net/http"

	"traineeportal/pkg/tools/json"
)

type (
	// httpError mirrors the backend's error body: message plus the status it
	// was sent with.
	httpError struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
		Error      string `json:"error,omitempty"`
	}

	// envelope is the canonical success wrapper newer endpoints use.
	envelope struct {
		Success bool   `json:"success"`
		Data    any    `json:"data"`
		Message string `json:"message,omitempty"`
	}
)

// ok writes obj in the canonical {success, data} wrapper.
func ok(obj any, w http.ResponseWriter) {
	write(http.StatusOK, envelope{Success: true, Data: obj}, w)
}

// okLegacy writes obj bare, the way the pre-envelope endpoints still answer.
// Kept deliberately: the client's normalization layer must keep coping with
// both shapes.
func okLegacy(obj any, w http.ResponseWriter) {
	write(http.StatusOK, obj, w)
}

func badRequest(message string, w http.ResponseWriter) {
	write(http.StatusBadRequest, httpError{
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Error:      "Bad Request",
	}, w)
}

func unauthorized(message string, w http.ResponseWriter) {
	write(http.StatusUnauthorized, httpError{
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Error:      "Unauthorized",
	}, w)
}

func notFound(message string, w http.ResponseWriter) {
	write(http.StatusNotFound, httpError{
		Message:    message,
		StatusCode: http.StatusNotFound,
		Error:      "Not Found",
	}, w)
}

func internalServerError(w http.ResponseWriter) {
	write(http.StatusInternalServerError, httpError{
		Message:    "The server encountered an unexpected condition that prevented it from fulfilling the request.",
		StatusCode: http.StatusInternalServerError,
		Error:      "Internal Server Error",
	}, w)
}

func write(status int, obj any, w http.ResponseWriter) {
	payload, err := json.Marshal(obj)
	if err != nil {
		slog.Error("failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
