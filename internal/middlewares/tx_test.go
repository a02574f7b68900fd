package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestTxMiddleware(t *testing.T) {
	t.Run("commits after handler", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		sqlxDB := sqlx.NewDb(db, "sqlmock")

		var gotTx *sqlx.Tx
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotTx = GetTxFromContext(r.Context())
			w.WriteHeader(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		rr := httptest.NewRecorder()

		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotNil(t, gotTx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure returns 500", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("begin failed"))

		sqlxDB := sqlx.NewDb(db, "sqlmock")

		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		rr := httptest.NewRecorder()

		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		sqlxDB := sqlx.NewDb(db, "sqlmock")

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		rr := httptest.NewRecorder()

		assert.Panics(t, func() {
			TxMiddleware(sqlxDB)(next).ServeHTTP(rr, req)
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTxFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, GetTxFromContext(req.Context()))
}
