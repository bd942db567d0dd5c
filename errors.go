package gearsetup

import "errors"

var (
	// ErrNilWeightFunc is returned when no weight function is supplied.
	ErrNilWeightFunc = errors.New("weight function must not be nil")
)
