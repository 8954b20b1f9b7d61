package controllers

import (
	"net/http"

	"github.com/anasbeautylab/beautylab-backend/api/middleware"
	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/api/validators"
	"github.com/anasbeautylab/beautylab-backend/internal/auth"
	"github.com/anasbeautylab/beautylab-backend/internal/users"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
	"github.com/google/uuid"
)

// loginEnvelope matches the dashboard contract: token and user ride at the
// top level next to the success flag.
type loginEnvelope struct {
	Success   bool           `json:"success"`
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expires_in"`
	User      *users.UserDTO `json:"user"`
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, loginEnvelope{
			Success:   true,
			Token:     result.Token,
			ExpiresIn: result.ExpiresIn,
			User:      result.User,
		})
	}
}

// AuthMe returns the current account, re-read from the store.
func AuthMe(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := contextUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Me(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// AuthRefresh re-mints a token for the already-authenticated user.
func AuthRefresh(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := contextUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.Refresh(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, token)
	}
}

// AuthLogout acknowledges the logout. Tokens are stateless, so the client
// discards its copy; nothing is revoked server-side.
func AuthLogout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"message": "logged out"})
	}
}

func contextUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user context")
	}
	return id, nil
}
