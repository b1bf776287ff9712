package services

import "errors"

// Service errors
var (
	ErrNilDataset         = errors.New("dataset is required")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)
