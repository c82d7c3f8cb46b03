package orders

import "errors"

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("order status cannot move backward")
	ErrMissingProof      = errors.New("proof of payment is required")
)
