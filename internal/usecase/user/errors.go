package user

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given ID or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID is returned when the requested ID is zero or negative.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidCredentials is returned on authentication failure. It covers
	// both unknown emails and wrong passwords so the response never reveals
	// which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned when a deactivated user tries to log in.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrSelfDemotion is returned when an admin tries to change their own
	// role or deactivate themselves.
	ErrSelfDemotion = errors.New("cannot change own role or status")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet requirements")
)
