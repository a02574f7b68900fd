package services

import (
	"context"
	"errors"
	"strings"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
)

// ErrPincodeRequired is returned when the lookup pincode is empty.
var ErrPincodeRequired = errors.New("pincode required")

// ATMReader defines the ATM lookup backing the API endpoint.
type ATMReader interface {
	FindByPincode(ctx context.Context, pincode string) ([]models.ATMDB, error)
}

// ATMService serves the pincode lookup.
type ATMService struct {
	reader ATMReader
}

// NewATMService creates a new ATMService instance.
func NewATMService(reader ATMReader) *ATMService {
	return &ATMService{reader: reader}
}

// FindByPincode returns ATMs matching the pincode exactly. An empty pincode
// fails; no match yields an empty slice.
func (svc *ATMService) FindByPincode(ctx context.Context, pincode string) ([]models.ATMDB, error) {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return nil, ErrPincodeRequired
	}

	atms, err := svc.reader.FindByPincode(ctx, pincode)
	if err != nil {
		logger.Log.Errorw("failed to find atms", "pincode", pincode, "err", err)
		return nil, err
	}

	return atms, nil
}
