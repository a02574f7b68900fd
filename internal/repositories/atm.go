package repositories

import (
	"context"
	"strings"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
)

// ATMReadRepository handles ATM read operations.
type ATMReadRepository struct {
	handle *StoreHandle
}

func NewATMReadRepository(handle *StoreHandle) *ATMReadRepository {
	return &ATMReadRepository{handle: handle}
}

// FindByPincode returns ATMs whose pincode matches exactly, ordered by id.
// An empty slice means no match.
func (r *ATMReadRepository) FindByPincode(ctx context.Context, pincode string) ([]models.ATMDB, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, name, address, pincode, latitude, longitude
		FROM atms
		WHERE pincode = $1
		ORDER BY id
	`

	atms := make([]models.ATMDB, 0)
	err = db.SelectContext(ctx, &atms, query, pincode)

	logger.Log.Infow("atm query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pincode},
		"result_count", len(atms),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return atms, nil
}

// ATMWriteRepository handles ATM write operations, used by seeding.
type ATMWriteRepository struct {
	handle *StoreHandle
}

func NewATMWriteRepository(handle *StoreHandle) *ATMWriteRepository {
	return &ATMWriteRepository{handle: handle}
}

// SaveIfNameAbsent inserts an ATM unless one with the same name exists.
// Returns true when a row was created, so re-seeding stays idempotent.
func (r *ATMWriteRepository) SaveIfNameAbsent(ctx context.Context, atm models.ATMDB) (bool, error) {
	db, err := r.handle.DB()
	if err != nil {
		return false, err
	}

	const query = `
		INSERT INTO atms (name, address, pincode, latitude, longitude)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (SELECT 1 FROM atms WHERE name = $1)
	`
	args := []any{atm.Name, atm.Address, atm.Pincode, atm.Latitude, atm.Longitude}

	res, err := db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("atm insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{atm.Name, atm.Pincode},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
