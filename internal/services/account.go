package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
)

// ErrUserNotFound is returned when a user id no longer resolves to a user.
var ErrUserNotFound = errors.New("user not found")

// AccountReader defines the read operations backing account views.
type AccountReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	ListAll(ctx context.Context) ([]models.UserDB, error)
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
}

// AccountService serves the dashboard and the home summary.
type AccountService struct {
	reader AccountReader
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(reader AccountReader) *AccountService {
	return &AccountService{reader: reader}
}

// GetUser returns the user for a resolved session id.
func (svc *AccountService) GetUser(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// HomeSummary returns all users and the sum of their balances. Store failures
// degrade to an empty list and a zero total rather than failing the page.
func (svc *AccountService) HomeSummary(ctx context.Context) ([]models.UserDB, decimal.Decimal) {
	users, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("home summary degraded to empty", "err", err)
		return []models.UserDB{}, decimal.Zero
	}

	total, err := svc.reader.TotalBalance(ctx)
	if err != nil {
		logger.Log.Errorw("home summary degraded to empty", "err", err)
		return []models.UserDB{}, decimal.Zero
	}

	return users, total
}
