package method

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax         = errors.New("syntax error")
	ErrMissingSection = errors.New("missing section")
	ErrMissingKey     = errors.New("missing key")
	ErrDuplicate      = errors.New("duplicate entry")
	ErrBadNumber      = errors.New("not a positive integer")
	ErrBadBool        = errors.New("not a boolean")
	ErrBadPlace       = errors.New("place out of range")
	ErrBadDefinition  = errors.New("bad definition")
	ErrUnknownLead    = errors.New("unknown lead symbol")
)

// ParseError reports a missing or malformed field in a method definition.
// Line is zero when the source format carries no line information.
type ParseError struct {
	Source  string
	Line    int
	Section string
	Key     string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	if e.Section != "" {
		fmt.Fprintf(&b, " [%s]", e.Section)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, " %s", e.Key)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }
