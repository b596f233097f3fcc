package rating

import "errors"

var (
	ErrInvalidContentID = errors.New("rating: invalid content id")
	ErrInvalidInput     = errors.New("rating: invalid input")
	ErrComputeFailed    = errors.New("rating: compute failed")
)
