// Package sessions keeps the server-side session state in Redis. A session
// holds a single key: the authenticated user's id. Logout deletes the whole
// session entry, which revokes any token that still references it.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/smartbank/smartbank/internal/logger"
)

// ErrSessionNotFound is returned when a session id does not resolve,
// either because it expired or because logout destroyed it.
var ErrSessionNotFound = errors.New("session not found")

// Store provides session create/resolve/destroy over Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a session store with the given TTL for new sessions.
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Create stores a new session referencing the user id and returns its id.
func (s *Store) Create(ctx context.Context, userID int64) (string, error) {
	sessionID := uuid.NewString()
	key := sessionKey(sessionID)

	err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), s.ttl).Err()

	logger.Log.Infow("session create",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return sessionID, nil
}

// UserID resolves a session id to the user id it references.
func (s *Store) UserID(ctx context.Context, sessionID string) (int64, error) {
	key := sessionKey(sessionID)

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("session lookup",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("session holds malformed user id",
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, ErrSessionNotFound
	}

	return userID, nil
}

// Destroy removes the session entry. Destroying a missing session is not an error.
func (s *Store) Destroy(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)

	err := s.client.Del(ctx, key).Err()

	logger.Log.Infow("session destroy",
		"key", key,
		"error", err,
	)

	return err
}
