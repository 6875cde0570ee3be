package services

import "errors"

// Business-rule failures; all are detected before any state mutation.
var (
	ErrInvalidRequest     = errors.New("services: missing required parameters")
	ErrNoServiceAvailable = errors.New("services: no service available")
	ErrInvalidAmount      = errors.New("services: invalid recharge amount")
)
