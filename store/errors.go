package store

import "errors"

// Validation errors returned by accessor writes.
var (
	// ErrNegativePrice is returned when a product is written with a price
	// below zero.
	ErrNegativePrice = errors.New("product price must not be negative")

	// ErrInvalidQuantity is returned when an order detail is written with a
	// quantity of zero or less.
	ErrInvalidQuantity = errors.New("order detail quantity must be positive")
)
