package id

import "github.com/google/uuid"

// GenerateID creates a globally unique session identifier.
func GenerateID() string {
	return uuid.NewString()
}
