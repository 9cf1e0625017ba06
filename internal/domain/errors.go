package domain

import "errors"

var (
	// ErrConfiguration marks failures caused by missing or invalid process configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstream marks failures of the external places lookup.
	ErrUpstream = errors.New("upstream places lookup failed")

	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
