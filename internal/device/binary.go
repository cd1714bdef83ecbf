package device

import (
	"fmt"
	"strings"

	"github.com/nerrad567/statedevice/internal/wire"
)

// FromMessage converts a wire message into a StateDevice.
//
// id and state are copied as-is; the wire codec has already validated them.
// name and type are copied only when present in the message, otherwise they
// stay absent on the device. FromMessage never fails. msg must not be nil.
func FromMessage(msg *wire.StateDeviceMessage) *StateDevice {
	dev := &StateDevice{
		id:    msg.ID,
		state: msg.State,
	}
	if msg.HasName() {
		dev.name = msg.GetName()
		dev.hasName = true
	}
	if msg.HasType() {
		dev.typ = msg.GetType()
	}
	return dev
}

// DecodeBinary decodes wire bytes into a StateDevice.
// Malformed bytes fail with wire.ErrInvalidMessage.
func DecodeBinary(data []byte) (*StateDevice, error) {
	msg, err := wire.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding state device: %w", err)
	}
	return FromMessage(msg), nil
}

// ToMessage converts a complete device into a wire message.
// A device missing any of id, name, type or state fails with
// ErrIncompleteDevice.
func (d *StateDevice) ToMessage() (*wire.StateDeviceMessage, error) {
	if err := d.checkComplete(); err != nil {
		return nil, err
	}
	return wire.NewStateDeviceMessage(d.id, d.name, d.typ, d.state), nil
}

// MarshalBinary encodes a complete device to wire bytes.
func (d *StateDevice) MarshalBinary() ([]byte, error) {
	msg, err := d.ToMessage()
	if err != nil {
		return nil, err
	}
	return wire.Encode(msg)
}

func (d *StateDevice) checkComplete() error {
	if missing := d.missingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteDevice, strings.Join(missing, ", "))
	}
	return nil
}
