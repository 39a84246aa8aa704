package dict

import (
	"errors"
	"fmt"
)

// ErrNotFound means the page made it clear the word has no entry:
// explicit "no results" markers, spelling suggestions, or an empty
// entry container.
var ErrNotFound = errors.New("no entry found for word")

// ParseError reports an unexpected structural fault while walking a
// source's markup. It is a terminal per-source outcome, never a
// raised fault past the lookup boundary.
type ParseError struct {
	Cause string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse page: %s", e.Cause)
}
