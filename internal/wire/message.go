package wire

import (
	"fmt"
)

// CBOR map keys for StateDeviceMessage.
const (
	KeyID    = 1
	KeyName  = 2
	KeyType  = 3
	KeyState = 4
)

// StateDeviceMessage is the wire representation of a single state device.
//
// CBOR encoding:
//
//	{
//	  1: id,     // text
//	  2: name,   // text, omitted when nil
//	  3: type,   // uint8, omitted when nil
//	  4: state   // uint8
//	}
type StateDeviceMessage struct {
	ID    string      `cbor:"1,keyasint"`
	Name  *string     `cbor:"2,keyasint,omitempty"`
	Type  *DeviceType `cbor:"3,keyasint,omitempty"`
	State DeviceState `cbor:"4,keyasint"`
}

// HasName returns true if the message carries a name.
func (m *StateDeviceMessage) HasName() bool {
	return m.Name != nil
}

// GetName returns the name, or "" when absent.
func (m *StateDeviceMessage) GetName() string {
	if m.Name == nil {
		return ""
	}
	return *m.Name
}

// HasType returns true if the message carries a device type.
func (m *StateDeviceMessage) HasType() bool {
	return m.Type != nil
}

// GetType returns the device type, or DeviceTypeUnspecified when absent.
func (m *StateDeviceMessage) GetType() DeviceType {
	if m.Type == nil {
		return DeviceTypeUnspecified
	}
	return *m.Type
}

// Validate checks that required fields are set and enums are in range.
func (m *StateDeviceMessage) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidMessage)
	}
	if !m.State.IsValid() {
		return fmt.Errorf("%w: invalid state: %d", ErrInvalidMessage, m.State)
	}
	if m.Type != nil && !m.Type.IsValid() {
		return fmt.Errorf("%w: invalid type: %d", ErrInvalidMessage, *m.Type)
	}
	return nil
}

// NewStateDeviceMessage builds a fully populated message.
func NewStateDeviceMessage(id, name string, typ DeviceType, state DeviceState) *StateDeviceMessage {
	return &StateDeviceMessage{
		ID:    id,
		Name:  &name,
		Type:  &typ,
		State: state,
	}
}
