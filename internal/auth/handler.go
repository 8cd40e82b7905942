package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
)

type ServiceAPI interface {
	Login(dto LoginDTO) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Login matches the submitted credentials against the users table and, on
// success, attaches the session token as a cookie alongside the success
// envelope. The cookie is a session cookie; the token itself carries the
// expiry.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Service.Login(dto)
	if err != nil {
		h.Logger.Error("login failed", "error", err)

		switch {
		case errors.Is(err, ErrInvalidCredentials):
			h.WriteError(w, internal.ErrWrongCredentials.StatusCode, internal.ErrWrongCredentials.Message)
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "Error running query")
			}
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:  transport.TokenCookieName,
		Value: token,
		Path:  "/",
	})
	h.WriteSuccess(w)
}

// Logout instructs the client to discard the cookie. Tokens are stateless,
// so nothing is invalidated server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   transport.TokenCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	h.WriteSuccess(w)
}

// Dashboard only answers behind the verification gate.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.WriteSuccess(w)
}

// VerifyMiddleware is the gate in front of protected routes: no cookie
// fails immediately, a bad or expired token fails after validation, and a
// valid token puts the embedded user id on the request context.
func (h *Handler) VerifyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.TokenFromCookie(r)
		if token == "" {
			h.Logger.Warn("verify: missing token cookie", "path", r.URL.Path)
			h.WriteError(w, internal.ErrNotAuthorized.StatusCode, internal.ErrNotAuthorized.Message)
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			h.Logger.Warn("verify: token rejected", "error", err, "path", r.URL.Path)
			h.WriteError(w, internal.ErrWrongToken.StatusCode, internal.ErrWrongToken.Message)
			return
		}

		ctx := internal.ContextWithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
