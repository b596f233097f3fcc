package addon

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("addon: not found")
	ErrInvalidCatalog = errors.New("addon: invalid catalog id")
	ErrInvalidID      = errors.New("addon: invalid content id")
	ErrBlocked        = errors.New("addon: content blocked due to age restriction")
)

// BlockedError carries the gate decision. It matches ErrBlocked with errors.Is.
type BlockedError struct {
	// AgeRating is nil when no rating could be produced.
	AgeRating  *int
	AllowedAge int
}

func (e *BlockedError) Error() string {
	if e.AgeRating == nil {
		return fmt.Sprintf("%s: unrated, allowed %d", ErrBlocked, e.AllowedAge)
	}
	return fmt.Sprintf("%s: rated %d, allowed %d", ErrBlocked, *e.AgeRating, e.AllowedAge)
}

func (e *BlockedError) Is(target error) bool {
	return target == ErrBlocked
}
