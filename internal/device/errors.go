package device

import (
	"errors"
	"fmt"
)

// Domain errors for the device package.
//
// The three decoder errors all wrap ErrInvalidArgument, so callers can either
// test for the specific kind or reject any invalid input at once:
//
//	if errors.Is(err, device.ErrInvalidArgument) {
//	    // reject the whole record
//	}
var (
	// ErrInvalidArgument is returned when structured input cannot be decoded
	// into a device.
	ErrInvalidArgument = errors.New("device: invalid argument")

	// ErrMissingField is returned when one of id, name, state or type is
	// absent or not a string.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrInvalidArgument)

	// ErrUnknownType is returned when the type string is not recognised.
	ErrUnknownType = fmt.Errorf("%w: unknown type", ErrInvalidArgument)

	// ErrUnknownState is returned when the state string is not recognised.
	ErrUnknownState = fmt.Errorf("%w: unknown state", ErrInvalidArgument)

	// ErrIncompleteDevice is returned when encoding a device that lacks one
	// of id, name, type or state.
	ErrIncompleteDevice = errors.New("device: incomplete")
)
