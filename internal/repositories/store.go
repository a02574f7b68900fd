package repositories

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrStoreUnavailable is returned by every repository method when the backing
// store was never configured or failed to initialize.
var ErrStoreUnavailable = errors.New("store unavailable")

// StoreHandle wraps the database connection and makes its absence an explicit,
// typed state instead of a process-wide flag. An unavailable handle is safe to
// pass to repositories; their methods fail with ErrStoreUnavailable.
type StoreHandle struct {
	db *sqlx.DB
}

// NewStoreHandle returns a handle over a live database connection.
func NewStoreHandle(db *sqlx.DB) *StoreHandle {
	return &StoreHandle{db: db}
}

// NewUnavailableStoreHandle returns a handle whose store is absent.
func NewUnavailableStoreHandle() *StoreHandle {
	return &StoreHandle{}
}

// DB returns the underlying connection or ErrStoreUnavailable.
func (h *StoreHandle) DB() (*sqlx.DB, error) {
	if h == nil || h.db == nil {
		return nil, ErrStoreUnavailable
	}
	return h.db, nil
}

// Available reports whether the store can serve queries.
func (h *StoreHandle) Available() bool {
	return h != nil && h.db != nil
}
