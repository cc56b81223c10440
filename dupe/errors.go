package dupe

import (
	"errors"
	"fmt"
)

var (
	ErrNotArray        = errors.New("value is not an array")
	ErrNotHash         = errors.New("value is not a hash")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrTooDeep         = errors.New("json nesting too deep")

	errNoFuncImpl = errors.New("callable has no implementation")
)

// UnsupportedKindError reports a value the chosen strategy cannot clone,
// naming the kind and the slot it was found at. It is the only error kind
// DeepCopy produces for a refused value: cycles and over-deep nesting under
// the json strategy are reported through it too, with Reason saying why the
// container was refused and the cause (ErrTooDeep for the depth limit)
// available through errors.Is.
type UnsupportedKindError struct {
	Kind     ValueKind
	Path     Path
	Strategy Strategy
	Reason   string
	cause    error
}

func (e *UnsupportedKindError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s value at %s: %s", e.Strategy, e.Kind, e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: unsupported %s value at %s", e.Strategy, e.Kind, e.Path)
}

func (e *UnsupportedKindError) Unwrap() error { return e.cause }
