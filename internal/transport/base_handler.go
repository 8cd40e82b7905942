package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/pkg/logger"
)

const (
	StatusSuccess = "Success"
	StatusError   = "Error"

	// TokenCookieName is the cookie the login handler sets and the
	// verification gate reads.
	TokenCookieName = "token"
)

// Envelope is the uniform response body: {Status, Result} on success,
// {Status, Error} on failure. Field casing is part of the client contract.
type Envelope struct {
	Status string `json:"Status"`
	Result any    `json:"Result,omitempty"`
	Error  string `json:"Error,omitempty"`
}

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteSuccess writes the bare success envelope.
func (h *BaseHandler) WriteSuccess(w http.ResponseWriter) {
	h.WriteJSON(w, http.StatusOK, Envelope{Status: StatusSuccess})
}

// WriteResult writes the success envelope carrying a result set.
func (h *BaseHandler) WriteResult(w http.ResponseWriter, result any) {
	h.WriteJSON(w, http.StatusOK, Envelope{Status: StatusSuccess, Result: result})
}

// WriteError writes an error envelope with an explicit status code.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, Envelope{Status: StatusError, Error: message})
}

// HandleServiceError converts a tagged service error into the envelope.
// AppError decides its own status code; anything else is a store fault.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}
	h.WriteError(w, http.StatusInternalServerError, "Error in running query")
}

// TokenFromCookie extracts the session token cookie, empty when absent.
func (h *BaseHandler) TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
