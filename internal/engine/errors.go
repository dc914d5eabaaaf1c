package engine

import (
	"errors"
	"fmt"

	"ringron/internal/method"
)

var (
	ErrUnknownExtent = errors.New("unknown extent")
	ErrNoBells       = errors.New("method has no bells")
	ErrBadIntros     = errors.New("intro courses must be >= 0")
	ErrBadCourses    = errors.New("extent courses must be >= 1")
	ErrInvalidRow    = errors.New("row is not a permutation")

	// ErrUnknownLead is returned for a definition symbol other than p, b or s.
	ErrUnknownLead = method.ErrUnknownLead
)

// PreconditionError reports a build request that cannot be satisfied.
type PreconditionError struct {
	Method   string
	ExtentID int
	Err      error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s extent %d: %v", e.Method, e.ExtentID, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }
