package services

import "errors"

var (
	ErrPizzaNotFound      = errors.New("pizza not found")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrClientNotFound     = errors.New("client not found")
)
