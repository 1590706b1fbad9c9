// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password is invalid.
	// ユーザー未登録とパスワード不一致は意図的に区別しません（アカウント列挙対策）。
	ErrInvalidCredentials = errors.New("invalid email or password")
)
