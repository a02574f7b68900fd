package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	t.Run("create and resolve", func(t *testing.T) {
		store := New(rdb, time.Minute)

		sessionID, err := store.Create(ctx, 42)
		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)

		userID, err := store.UserID(ctx, sessionID)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("sessions are distinct", func(t *testing.T) {
		store := New(rdb, time.Minute)

		first, err := store.Create(ctx, 1)
		assert.NoError(t, err)
		second, err := store.Create(ctx, 2)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)

		userID, err := store.UserID(ctx, second)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), userID)
	})

	t.Run("destroy revokes the session", func(t *testing.T) {
		store := New(rdb, time.Minute)

		sessionID, err := store.Create(ctx, 42)
		assert.NoError(t, err)

		err = store.Destroy(ctx, sessionID)
		assert.NoError(t, err)

		_, err = store.UserID(ctx, sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("destroying a missing session is not an error", func(t *testing.T) {
		store := New(rdb, time.Minute)

		err := store.Destroy(ctx, "never-existed")
		assert.NoError(t, err)
	})

	t.Run("unknown session", func(t *testing.T) {
		store := New(rdb, time.Minute)

		_, err := store.UserID(ctx, "unknown")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("session expires after TTL", func(t *testing.T) {
		store := New(rdb, 2*time.Second)

		sessionID, err := store.Create(ctx, 42)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = store.UserID(ctx, sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("malformed session value", func(t *testing.T) {
		store := New(rdb, time.Minute)

		err := rdb.Set(ctx, "session:broken", "not-a-number", time.Minute).Err()
		assert.NoError(t, err)

		_, err = store.UserID(ctx, "broken")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
