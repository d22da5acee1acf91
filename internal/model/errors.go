package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Resource related errors
	ErrFarmNotFound       = errors.New("farm not found")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrPlanNotFound       = errors.New("recovery plan not found")
	ErrAlertNotFound      = errors.New("alert not found")

	// Permission/Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("storage unavailable")
)
