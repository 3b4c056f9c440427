package entities

import (
	"strings"
	"time"
)

// User is the requester of quotations. Deleting a user removes their quotations.
//
// Storage model (DynamoDB):
//   - PK: id
//   - guard table user_emails keeps email unique
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
