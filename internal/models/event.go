package models

// SignupEvent is published to Kafka after a successful registration.
type SignupEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the registration
	UserID    int64  `json:"user_id"`   // Identifier of the new user
	Email     string `json:"email"`     // Registered email
	Operation string `json:"operation"` // Always "signup"
}
