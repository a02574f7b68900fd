package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/repositories"
	"github.com/smartbank/smartbank/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password, balanceInput string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email, the login identifier
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Opening balance, falls back to 0.00 when empty or unparsable
	// default: 100.50
	Balance string `json:"balance"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Account created. Please upload face image.
	Message string `json:"message"`

	// Identifier of the new user
	// default: 1
	UserID int64 `json:"user_id"`

	// Path of the face-upload step that completes onboarding
	// default: /upload-face/1
	Next string `json:"next"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Email already registered.
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// Registration persists the account and points the client at the face-upload
// step; onboarding is only complete once that step is reached.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. The password is hashed before storing. The response links to the face-upload step.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing fields or email already registered"
// @Failure 503 {object} handlers.RegisterErrorResponse "Database not configured"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Name, email and password are required.",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, req.Balance)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Name, email and password are required.",
				})
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Email already registered.",
				})
			case errors.Is(err, repositories.ErrStoreUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Registration unavailable: database not configured on server.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "Account created. Please upload face image.",
			UserID:  user.ID,
			Next:    fmt.Sprintf("/upload-face/%d", user.ID),
		})
	}
}
