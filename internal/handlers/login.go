package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/smartbank/smartbank/internal/jwt"
	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/repositories"
	"github.com/smartbank/smartbank/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, error)
}

// SessionCreator establishes a server-side session for a user.
type SessionCreator interface {
	Create(ctx context.Context, userID int64) (string, error)
}

// LoginTokener signs the session cookie token.
type LoginTokener interface {
	Generate(ctx context.Context, sessionID string, userID int64) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Welcome message
	// default: Welcome back, John Doe!
	Message string `json:"message"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid credentials.
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login. On success it
// creates a session and sets the signed session cookie. Unknown email and
// wrong password share one message; unexpected failures surface as a single
// generic message with the detail kept in the log.
// @Summary User login
// @Description Authenticate with email and password; establishes a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session established"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing email or password"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid credentials"
// @Failure 503 {object} handlers.LoginErrorResponse "Database not configured"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessionStore SessionCreator, tokener LoginTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Please provide login id and password.",
			})
			return
		}

		user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Please provide login id and password.",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid credentials.",
				})
			case errors.Is(err, repositories.ErrStoreUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Login unavailable: database not configured.",
				})
			default:
				logger.Log.Errorw("login error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Server error during login. Please try again.",
				})
			}
			return
		}

		sessionID, err := sessionStore.Create(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to create session", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Server error during login. Please try again.",
			})
			return
		}

		token, err := tokener.Generate(r.Context(), sessionID, user.ID)
		if err != nil {
			logger.Log.Errorw("failed to sign session token", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Server error during login. Please try again.",
			})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: fmt.Sprintf("Welcome back, %s!", user.Name),
		})
	}
}
