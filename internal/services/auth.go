package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/repositories"
)

// Error variables
var (
	ErrValidation         = errors.New("name, email and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string, balance decimal.Decimal) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user account. Name, email and password must be
// non-empty after trimming. The balance input falls back to 0.00 when empty,
// unparsable or negative. A hashing failure fails the registration outright;
// plaintext is never stored.
func (svc *AuthService) Register(ctx context.Context, name, email, password, balanceInput string) (*models.UserDB, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrValidation
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	balance := parseBalance(balanceInput)

	id, err := svc.writer.Save(ctx, name, email, string(hashedPassword), balance)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			// Lost the race to a concurrent registration with the same email.
			logger.Log.Infow("email already registered", "email", email)
			return nil, ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "email", email, "err", err)
		return nil, err
	}

	user := &models.UserDB{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Balance:      balance,
	}

	svc.publishSignup(ctx, user)

	return user, nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password produce the same error so the response does not reveal
// whether the email exists.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login with unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login with wrong password", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// publishSignup publishes a signup event to Kafka. Best effort: a missing
// writer or a publish failure never fails the registration.
func (svc *AuthService) publishSignup(ctx context.Context, user *models.UserDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "user_id", user.ID)
		return
	}

	event := models.SignupEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    user.ID,
		Email:     user.Email,
		Operation: "signup",
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal signup event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish signup event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("signup event published", "event_id", event.EventID, "user_id", user.ID)
	}
}

// parseBalance parses the registration balance input as a scale-2 decimal.
// Empty, unparsable and negative inputs all become 0.00.
func parseBalance(input string) decimal.Decimal {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(input)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}
