package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserDB represents a user account row in the database.
type UserDB struct {
	ID           int64           `json:"id" db:"id"`                       // Primary key
	Name         string          `json:"name" db:"name"`                   // Display name
	Email        string          `json:"email" db:"email"`                 // Unique login identifier
	PasswordHash string          `json:"-" db:"password_hash"`             // bcrypt credential, never serialized
	Balance      decimal.Decimal `json:"balance" db:"balance"`             // Monetary balance, scale 2
	FaceFilename *string         `json:"face_filename" db:"face_filename"` // Stored face asset name, nil until uploaded
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// UserResponse is the plain mapping of a user handed to views.
// swagger:model UserResponse
type UserResponse struct {
	// User identifier
	// example: 1
	ID int64 `json:"id"`

	// Display name
	// example: John Doe
	Name string `json:"name"`

	// Email
	// example: john@example.com
	Email string `json:"email"`

	// Balance with two decimal places
	// example: 100.50
	Balance string `json:"balance"`

	// Stored face image name, null until uploaded
	// example: user_1.jpg
	FaceFilename *string `json:"face_filename"`
}

// ToResponse converts a user row to its view mapping.
func (u UserDB) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Balance:      u.Balance.StringFixed(2),
		FaceFilename: u.FaceFilename,
	}
}
