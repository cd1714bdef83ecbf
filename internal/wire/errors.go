package wire

import "errors"

// ErrInvalidMessage is returned when wire bytes cannot be decoded or the
// decoded message fails validation.
var ErrInvalidMessage = errors.New("wire: invalid message")
