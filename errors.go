package hookline

import (
	"errors"
	"reflect"
	"strconv"
)

// Sentinel errors for the filter registry.
var (
	// ErrNilCallback is the panic value when a nil callback is registered.
	ErrNilCallback = errors.New("filter callback cannot be nil")

	// ErrTypeMismatch matches any *TypeMismatchError via errors.Is.
	ErrTypeMismatch = errors.New("filter value type mismatch")
)

// TypeMismatchError reports a value whose type a registered filter does not
// accept. The apply pass stops at the offending filter.
type TypeMismatchError struct {
	// Hook is the hook being applied.
	Hook string

	// ID is the id of the filter that rejected the value, if known.
	ID FilterID

	// Want is the type the filter expects.
	Want reflect.Type

	// Got is the dynamic type of the rejected value; nil for untyped nil.
	Got reflect.Type
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	want := "<nil>"
	if e.Want != nil {
		want = e.Want.String()
	}
	got := "<nil>"
	if e.Got != nil {
		got = e.Got.String()
	}
	msg := "type mismatch for hook \"" + e.Hook + "\": want " + want + ", got " + got
	if e.ID != 0 {
		msg += " (filter " + strconv.FormatUint(uint64(e.ID), 10) + ")"
	}
	return msg
}

// Is allows errors.Is to match TypeMismatchError with ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
