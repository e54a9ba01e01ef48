// Package common defines sentinel errors shared by the credential
// store, the auth service, and the HTTP layer. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// store-level errors
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidField  = errors.New("invalid field")

	// auth-level errors (a session or reset token that resolves to nothing)
	ErrInvalidToken = errors.New("invalid token")

	// generic flow control
	ErrInternal = errors.New("internal error")
)
