package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/middlewares"
	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/repositories"
	"github.com/smartbank/smartbank/internal/services"
)

// Accounter resolves the session's user for the dashboard view.
type Accounter interface {
	GetUser(ctx context.Context, id int64) (*models.UserDB, error)
}

// DashboardResponse carries the data the dashboard view consumes
// swagger:model DashboardResponse
type DashboardResponse struct {
	// The authenticated user
	User models.UserResponse `json:"user"`
}

// DashboardErrorResponse represents an error response for the dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: User not found.
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler for the per-user dashboard.
// The auth middleware guarantees a resolved session; the user may still have
// vanished between session creation and now.
// @Summary User dashboard
// @Description Returns the authenticated user's account data
// @Tags account
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Account data"
// @Failure 401 {object} handlers.DashboardErrorResponse "No active session"
// @Failure 404 {object} handlers.DashboardErrorResponse "Session user no longer exists"
// @Failure 503 {object} handlers.DashboardErrorResponse "Database not configured"
// @Router /dashboard [get]
func NewDashboardHandler(svc Accounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DashboardErrorResponse{
				Error: "Please login to access your account.",
			})
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DashboardErrorResponse{
					Error: "User not found.",
				})
			case errors.Is(err, repositories.ErrStoreUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(DashboardErrorResponse{
					Error: "Dashboard unavailable: database not configured.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DashboardErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{
			User: user.ToResponse(),
		})
	}
}
