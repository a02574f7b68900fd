package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/repositories"
	"github.com/smartbank/smartbank/internal/services"
)

// ATMFinder defines the interface that the ATM lookup service must implement.
type ATMFinder interface {
	FindByPincode(ctx context.Context, pincode string) ([]models.ATMDB, error)
}

// ATMsResponse represents the ATM lookup result
// swagger:model ATMsResponse
type ATMsResponse struct {
	// The queried pincode
	// default: 425405
	Pincode string `json:"pincode"`

	// Number of matching ATMs
	// default: 1
	Count int `json:"count"`

	// Matching ATM records
	ATMs []models.ATMResponse `json:"atms"`
}

// ATMsErrorResponse represents an error response for the ATM lookup
// swagger:model ATMsErrorResponse
type ATMsErrorResponse struct {
	// Error message
	// default: pincode required
	Error string `json:"error"`
}

// NewATMsHandler returns an HTTP handler for the ATM lookup API.
// @Summary ATMs by pincode
// @Description Returns ATMs whose pincode matches the query parameter exactly
// @Tags atms
// @Produce json
// @Param pincode query string true "Postal code"
// @Success 200 {object} handlers.ATMsResponse "Matching ATMs"
// @Failure 400 {object} handlers.ATMsErrorResponse "Missing pincode"
// @Failure 503 {object} handlers.ATMsErrorResponse "Database unavailable"
// @Router /api/atms [get]
func NewATMsHandler(svc ATMFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		pincode := strings.TrimSpace(r.URL.Query().Get("pincode"))

		atms, err := svc.FindByPincode(r.Context(), pincode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPincodeRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ATMsErrorResponse{
					Error: "pincode required",
				})
			case errors.Is(err, repositories.ErrStoreUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(ATMsErrorResponse{
					Error: "database unavailable",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ATMsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		resp := ATMsResponse{
			Pincode: pincode,
			Count:   len(atms),
			ATMs:    make([]models.ATMResponse, 0, len(atms)),
		}
		for _, a := range atms {
			resp.ATMs = append(resp.ATMs, a.ToResponse())
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
