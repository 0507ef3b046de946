package report

import "errors"

// Report domain errors
var (
	ErrInvalidWindow = errors.New("reporting window start is after end")
	ErrNoPunchData   = errors.New("no punch data to reconcile")
)
