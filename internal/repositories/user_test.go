package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*StoreHandle, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		email VARCHAR(200) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		balance NUMERIC(12, 2) NOT NULL DEFAULT 0,
		face_filename VARCHAR(300),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return NewStoreHandle(db), teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	handle, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(handle, nil)
	ctx := context.Background()

	id, err := repo.Save(ctx, "Alice", "alice@example.com", "hashed-pw", decimal.RequireFromString("10.50"))
	assert.NoError(t, err)
	assert.NotZero(t, id)

	db, _ := handle.DB()
	var user struct {
		Name         string          `db:"name"`
		Email        string          `db:"email"`
		PasswordHash string          `db:"password_hash"`
		Balance      decimal.Decimal `db:"balance"`
	}
	err = db.Get(&user, "SELECT name, email, password_hash, balance FROM users WHERE id=$1", id)
	assert.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-pw", user.PasswordHash)
	assert.Equal(t, "10.50", user.Balance.StringFixed(2))
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	handle, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(handle, nil)
	ctx := context.Background()

	_, err := repo.Save(ctx, "Alice", "alice@example.com", "hashed-pw", decimal.Zero)
	assert.NoError(t, err)

	_, err = repo.Save(ctx, "Impostor", "alice@example.com", "other-pw", decimal.Zero)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The losing insert must not have touched the existing row.
	db, _ := handle.DB()
	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM users WHERE email=$1", "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	var name string
	err = db.Get(&name, "SELECT name FROM users WHERE email=$1", "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", name)
}

func TestUserWriteRepository_SaveFaceFilename(t *testing.T) {
	handle, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(handle, nil)
	ctx := context.Background()

	id, err := repo.Save(ctx, "Bob", "bob@example.com", "hashed-pw", decimal.Zero)
	assert.NoError(t, err)

	err = repo.SaveFaceFilename(ctx, id, fmt.Sprintf("user_%d.png", id))
	assert.NoError(t, err)

	// A re-upload with a different extension overwrites the reference.
	err = repo.SaveFaceFilename(ctx, id, fmt.Sprintf("user_%d.jpg", id))
	assert.NoError(t, err)

	db, _ := handle.DB()
	var filename string
	err = db.Get(&filename, "SELECT face_filename FROM users WHERE id=$1", id)
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("user_%d.jpg", id), filename)
}

func TestUserWriteRepository_SaveFaceFilename_UnknownUser(t *testing.T) {
	handle, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(handle, nil)

	err := repo.SaveFaceFilename(context.Background(), 9999, "user_9999.jpg")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserReadRepository(t *testing.T) {
	handle, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(handle, nil)
	readRepo := NewUserReadRepository(handle)
	ctx := context.Background()

	aliceID, err := writeRepo.Save(ctx, "Alice", "alice@example.com", "hash-a", decimal.RequireFromString("10.50"))
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "Bob", "bob@example.com", "hash-b", decimal.RequireFromString("4.50"))
	assert.NoError(t, err)

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "10.50", user.Balance.StringFixed(2))
	})

	t.Run("GetByEmailNotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, aliceID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ListAll", func(t *testing.T) {
		users, err := readRepo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "Alice", users[0].Name)
		assert.Equal(t, "Bob", users[1].Name)
	})

	t.Run("TotalBalance", func(t *testing.T) {
		total, err := readRepo.TotalBalance(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "15.00", total.StringFixed(2))
	})
}

func TestUserReadRepository_TotalBalance_Empty(t *testing.T) {
	handle, teardown := setupUserPostgresContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(handle)

	total, err := readRepo.TotalBalance(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "0.00", total.StringFixed(2))
}

func TestUserWriteRepository_UsesContextTx(t *testing.T) {
	handle, teardown := setupUserPostgresContainer(t)
	defer teardown()

	db, _ := handle.DB()
	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewUserWriteRepository(handle, func(ctx context.Context) *sqlx.Tx { return tx })
	ctx := context.Background()

	_, err = repo.Save(ctx, "Carol", "carol@example.com", "hash-c", decimal.Zero)
	assert.NoError(t, err)

	assert.NoError(t, tx.Rollback())

	// The insert ran inside the rolled-back tx, so the row must be gone.
	readRepo := NewUserReadRepository(handle)
	user, err := readRepo.GetByEmail(ctx, "carol@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositories_StoreUnavailable(t *testing.T) {
	handle := NewUnavailableStoreHandle()
	readRepo := NewUserReadRepository(handle)
	writeRepo := NewUserWriteRepository(handle, nil)
	ctx := context.Background()

	_, err := readRepo.GetByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = readRepo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = readRepo.ListAll(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = readRepo.TotalBalance(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = writeRepo.Save(ctx, "Alice", "alice@example.com", "hash", decimal.Zero)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = writeRepo.SaveFaceFilename(ctx, 1, "user_1.jpg")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.False(t, errors.Is(err, sql.ErrNoRows))
}
