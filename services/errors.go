package services

import "errors"

// Sentinel errors shared across services and the HTTP mapping layer.
var (
	ErrNotFound = errors.New("requested resource not found")

	ErrTournamentNotFound = errors.New("tournament not found")
	ErrDrawNotFound       = errors.New("draw not found")
)
