package mathfuncs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every argument validation failure.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrShapeMismatch is returned when three-phase slices cannot be broadcast together.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// ArgumentError carries a caller-facing message verbatim while still matching
// ErrInvalidArgument with errors.Is.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument returns an *ArgumentError with a formatted message.
func InvalidArgument(format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}
