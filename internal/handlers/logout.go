package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/smartbank/smartbank/internal/jwt"
	"github.com/smartbank/smartbank/internal/logger"
)

// LogoutTokener extracts and parses the session cookie token.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionDestroyer removes the whole server-side session entry.
type SessionDestroyer interface {
	Destroy(ctx context.Context, sessionID string) error
}

// LogoutResponse represents the logout confirmation
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Info message
	// default: You have been logged out.
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that clears the session. The whole
// session entry is destroyed, not just the user key, and the cookie is
// expired. Logging out without a session still succeeds.
// @Summary User logout
// @Description Destroys the server-side session and expires the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /logout [get]
func NewLogoutHandler(tokener LogoutTokener, sessionStore SessionDestroyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
			if claims, err := tokener.GetClaims(ctx, tokenString); err == nil {
				if err := sessionStore.Destroy(ctx, claims.SessionID); err != nil {
					logger.Log.Errorw("failed to destroy session", "err", err)
				}
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "You have been logged out.",
		})
	}
}
