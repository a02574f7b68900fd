package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/smartbank/smartbank/internal/jwt"
	"github.com/smartbank/smartbank/internal/logger"
)

// Tokener extracts and parses the session cookie token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionResolver resolves a session id to the user id it references.
type SessionResolver interface {
	UserID(ctx context.Context, sessionID string) (int64, error)
}

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware returns a middleware that requires an active session.
// The token signature is checked first, then the session is resolved
// server-side so a logged-out session is rejected even with a valid token.
func AuthMiddleware(tokener Tokener, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("unauthenticated request", "uri", r.RequestURI, "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("invalid session token", "uri", r.RequestURI, "err", err)
				unauthorized(w)
				return
			}

			userID, err := sessions.UserID(ctx, claims.SessionID)
			if err != nil {
				logger.Log.Infow("session no longer active", "uri", r.RequestURI, "err", err)
				unauthorized(w)
				return
			}

			ctx = setUserIDToContext(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "Please login to access your account.",
	})
}

// setUserIDToContext stores the authenticated user id in the context.
func setUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
// The second return is false when no session was resolved.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
