package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates that another identity already owns the email.
	ErrEmailTaken = errors.New("email already in use")
)
