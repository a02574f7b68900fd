package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestStoreHandle(t *testing.T) {
	t.Run("available handle", func(t *testing.T) {
		mockDB, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer mockDB.Close()

		handle := NewStoreHandle(sqlx.NewDb(mockDB, "sqlmock"))

		assert.True(t, handle.Available())

		db, err := handle.DB()
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("unavailable handle", func(t *testing.T) {
		handle := NewUnavailableStoreHandle()

		assert.False(t, handle.Available())

		db, err := handle.DB()
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.Nil(t, db)
	})

	t.Run("nil handle", func(t *testing.T) {
		var handle *StoreHandle

		assert.False(t, handle.Available())

		_, err := handle.DB()
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}
