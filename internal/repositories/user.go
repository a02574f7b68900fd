package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
)

// ErrDuplicateEmail is returned when an insert collides with an existing email.
var ErrDuplicateEmail = errors.New("email already registered")

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	handle *StoreHandle
}

func NewUserReadRepository(handle *StoreHandle) *UserReadRepository {
	return &UserReadRepository{handle: handle}
}

// GetByEmail returns the user with the given email, or nil when no row matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, name, email, password_hash, balance, face_filename, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err = db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, name, email, password_hash, balance, face_filename, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err = db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListAll returns every user ordered by id.
func (r *UserReadRepository) ListAll(ctx context.Context) ([]models.UserDB, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, name, email, password_hash, balance, face_filename, created_at, updated_at
		FROM users
		ORDER BY id
	`

	users := make([]models.UserDB, 0)
	err = db.SelectContext(ctx, &users, query)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// TotalBalance sums all user balances, treating an empty table as zero.
func (r *UserReadRepository) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	db, err := r.handle.DB()
	if err != nil {
		return decimal.Zero, err
	}

	const query = `SELECT COALESCE(SUM(balance), 0) FROM users`

	var total decimal.Decimal
	err = db.GetContext(ctx, &total, query)

	logger.Log.Infow("user query",
		"query", query,
		"result", total,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	handle   *StoreHandle
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(handle *StoreHandle, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{handle: handle, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// Save inserts a new user and returns the assigned id. The insert relies on
// the store's uniqueness enforcement, so concurrent registrations with the
// same email resolve to exactly one winner; the loser gets ErrDuplicateEmail
// with no mutation.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string, balance decimal.Decimal) (int64, error) {
	db, err := r.handle.DB()
	if err != nil {
		return 0, err
	}

	const query = `
		INSERT INTO users (name, email, password_hash, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`
	args := []any{name, email, passwordHash, balance}

	var id int64
	err = sqlx.GetContext(ctx, r.executor(ctx, db), &id, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, balance},
		"result", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrDuplicateEmail
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

// SaveFaceFilename sets the stored face asset name for a user. Idempotent:
// re-invocation overwrites the prior reference.
func (r *UserWriteRepository) SaveFaceFilename(ctx context.Context, userID int64, filename string) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}

	const query = `
		UPDATE users
		SET face_filename = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.executor(ctx, db).ExecContext(ctx, query, userID, filename)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, filename},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
