package apperror

import "errors"

var (
	ErrUnknownLabel     = errors.New("unknown cell label")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidBoard     = errors.New("invalid board dimensions")
	ErrPartialFailure   = errors.New("some cells were not created")
	ErrReportNotFound   = errors.New("report not found")
	ErrEmptyCandidateID = errors.New("candidate id is empty")
	ErrUnknownMode      = errors.New("unknown build mode")
)
