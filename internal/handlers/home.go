package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/smartbank/smartbank/internal/models"
)

// HomeSummarizer supplies the home page data. Store failures are absorbed by
// the service, which degrades to an empty list and a zero total.
type HomeSummarizer interface {
	HomeSummary(ctx context.Context) ([]models.UserDB, decimal.Decimal)
}

// HomeResponse carries the data the home view consumes
// swagger:model HomeResponse
type HomeResponse struct {
	// All registered users
	Users []models.UserResponse `json:"users"`

	// Sum of all balances with two decimal places
	// default: 0.00
	TotalBalance string `json:"total_balance"`
}

// NewHomeHandler returns an HTTP handler for the home summary.
// @Summary Home summary
// @Description Lists all users and the total of their balances; degrades to an empty list when the store is unavailable
// @Tags account
// @Produce json
// @Success 200 {object} handlers.HomeResponse "Home summary"
// @Router / [get]
func NewHomeHandler(svc HomeSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, total := svc.HomeSummary(r.Context())

		resp := HomeResponse{
			Users:        make([]models.UserResponse, 0, len(users)),
			TotalBalance: total.StringFixed(2),
		}
		for _, u := range users {
			resp.Users = append(resp.Users, u.ToResponse())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
