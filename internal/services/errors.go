package services

import "errors"

// Credential failures. Each maps to 401 at the HTTP boundary.
var (
	ErrMissingCredential   = errors.New("missing credential")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrExpiredCredential   = errors.New("expired credential")
	ErrUnknownSubject      = errors.New("unknown token subject")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("current password is incorrect")
)

// ErrAccountInactive is returned when a non-active account tries to sign in.
var ErrAccountInactive = errors.New("account is not active")
