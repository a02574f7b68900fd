package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/repositories"
	"github.com/smartbank/smartbank/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		balanceInput string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantBalance  string
		wantErr      error
	}{
		{
			name:         "successful registration",
			userName:     "Alice",
			email:        "alice@example.com",
			password:     "pass123",
			balanceInput: "10.50",
			wantBalance:  "10.50",
		},
		{
			name:         "empty balance defaults to zero",
			userName:     "Bob",
			email:        "bob@example.com",
			password:     "pass123",
			balanceInput: "",
			wantBalance:  "0.00",
		},
		{
			name:         "unparsable balance defaults to zero",
			userName:     "Carol",
			email:        "carol@example.com",
			password:     "pass123",
			balanceInput: "not-a-number",
			wantBalance:  "0.00",
		},
		{
			name:         "negative balance defaults to zero",
			userName:     "Dan",
			email:        "dan@example.com",
			password:     "pass123",
			balanceInput: "-5.00",
			wantBalance:  "0.00",
		},
		{
			name:         "excess scale is rounded to cents",
			userName:     "Erin",
			email:        "erin@example.com",
			password:     "pass123",
			balanceInput: "5.005",
			wantBalance:  "5.01",
		},
		{
			name:         "email already registered",
			userName:     "Frank",
			email:        "frank@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{ID: 7, Email: "frank@example.com"},
			wantErr:      services.ErrEmailTaken,
		},
		{
			name:     "concurrent duplicate resolved by store",
			userName: "Grace",
			email:    "grace@example.com",
			password: "pass123",
			writerErr: repositories.ErrDuplicateEmail,
			wantErr:   services.ErrEmailTaken,
		},
		{
			name:      "reader error",
			userName:  "Henry",
			email:     "henry@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "missing name",
			userName: "   ",
			email:    "ivy@example.com",
			password: "pass123",
			wantErr:  services.ErrValidation,
		},
		{
			name:     "missing email",
			userName: "Ivy",
			email:    "",
			password: "pass123",
			wantErr:  services.ErrValidation,
		},
		{
			name:     "missing password",
			userName: "Ivy",
			email:    "ivy@example.com",
			password: "",
			wantErr:  services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, nil)

			if !errors.Is(tt.wantErr, services.ErrValidation) {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.existingUser, tt.readerErr)
			}

			var savedHash string
			var savedBalance decimal.Decimal
			if tt.existingUser == nil && tt.readerErr == nil && !errors.Is(tt.wantErr, services.ErrValidation) {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.userName, tt.email, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, passwordHash string, balance decimal.Decimal) (int64, error) {
						savedHash = passwordHash
						savedBalance = balance
						if tt.writerErr != nil {
							return 0, tt.writerErr
						}
						return 1, nil
					})
			}

			user, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password, tt.balanceInput)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, user)
			assert.Equal(t, int64(1), user.ID)
			assert.Equal(t, tt.wantBalance, savedBalance.StringFixed(2))

			// The stored credential must never equal the plaintext password.
			assert.NotEqual(t, tt.password, savedHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte(tt.password)))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	registered := &models.UserDB{
		ID:           1,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name     string
		email    string
		password string
		user     *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "secret123",
			user:     registered,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			user:     registered,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "missing email",
			email:    "",
			password: "secret123",
			wantErr:  services.ErrValidation,
		},
		{
			name:     "missing password",
			email:    "alice@example.com",
			password: "",
			wantErr:  services.ErrValidation,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  "secret123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), nil)

			if !errors.Is(tt.wantErr, services.ErrValidation) {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.user, tt.readerErr)
			}

			user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
		})
	}
}

// The unknown-email and wrong-password failures must be indistinguishable
// through the returned error.
func TestAuthService_Login_MergedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.UserDB{ID: 1, Email: "alice@example.com", PasswordHash: string(hash)}

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), nil)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret123")

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
	_, errWrong := svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, services.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Register_PublishesSignupEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockKafka)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "Alice", "alice@example.com", gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123", "")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

// A publish failure must not fail the registration.
func TestAuthService_Register_KafkaFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockKafka)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "Bob", "bob@example.com", gomock.Any(), gomock.Any()).
		Return(int64(2), nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	user, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass123", "")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}
