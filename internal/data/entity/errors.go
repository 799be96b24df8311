package entity

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrBookingConflict = errors.New("requested slot overlaps an existing booking")
)
