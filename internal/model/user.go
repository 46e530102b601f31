// Package model defines domain entities for the application.
package model

import (
	"errors"
	"strings"
)

// MaxFieldLength is the maximum length, in characters, of name and email.
const MaxFieldLength = 100

// PlaceholderUserID is the id echoed back for every created user.
// No identity allocation exists; created users are never stored.
const PlaceholderUserID = 3

// Validation errors.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidEmail = errors.New("invalid email format")
)

// User represents a user record.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// seedUsers is the fixed, read-only user set served by the list endpoint.
var seedUsers = []User{
	{ID: 1, Name: "John Doe", Email: "john@example.com"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
}

// SeedUsers returns a copy of the seed user list in id order.
func SeedUsers() []User {
	users := make([]User, len(seedUsers))
	copy(users, seedUsers)
	return users
}

// CreateUserInput is the decoded payload of a create request.
// Nil fields mean the key was absent or null.
type CreateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// NewUser validates the input and builds the user to echo back.
// Name and email are truncated to MaxFieldLength before the email check.
func NewUser(in CreateUserInput) (User, error) {
	if in.Name == nil || in.Email == nil {
		return User{}, ErrInvalidInput
	}

	name := Truncate(*in.Name, MaxFieldLength)
	email := Truncate(*in.Email, MaxFieldLength)

	if !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}

	return User{
		ID:    PlaceholderUserID,
		Name:  name,
		Email: email,
	}, nil
}

// Truncate shortens s to at most limit characters (runes).
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
