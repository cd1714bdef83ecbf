package device

import (
	"fmt"

	"github.com/nerrad567/statedevice/internal/wire"
)

// Type keys used in structured objects.
const (
	TypeKeyDoorbell   = "doorbell"
	TypeKeyGarageDoor = "garagedoor"
	TypeKeyLight      = "light"
	TypeKeyCeilingFan = "ceilingfan"
)

// State keys used in structured objects.
const (
	StateKeyOn       = "on"
	StateKeyOff      = "off"
	StateKeyActive   = "active"
	StateKeyInactive = "inactive"
	StateKeyOpen     = "open"
	StateKeyClosed   = "closed"
)

// Lookup tables in both directions. Matching is case-sensitive.
var (
	deviceTypesByKey = map[string]wire.DeviceType{
		TypeKeyDoorbell:   wire.DeviceTypeDoorbell,
		TypeKeyGarageDoor: wire.DeviceTypeGarageDoor,
		TypeKeyLight:      wire.DeviceTypeLight,
		TypeKeyCeilingFan: wire.DeviceTypeCeilingFan,
	}

	deviceStatesByKey = map[string]wire.DeviceState{
		StateKeyOn:       wire.DeviceStateOn,
		StateKeyOff:      wire.DeviceStateOff,
		StateKeyActive:   wire.DeviceStateActive,
		StateKeyInactive: wire.DeviceStateInactive,
		StateKeyOpen:     wire.DeviceStateOpen,
		StateKeyClosed:   wire.DeviceStateClosed,
	}

	typeKeys  map[wire.DeviceType]string
	stateKeys map[wire.DeviceState]string
)

func init() {
	typeKeys = make(map[wire.DeviceType]string, len(deviceTypesByKey))
	for k, t := range deviceTypesByKey {
		typeKeys[t] = k
	}

	stateKeys = make(map[wire.DeviceState]string, len(deviceStatesByKey))
	for k, s := range deviceStatesByKey {
		stateKeys[s] = k
	}
}

// ParseDeviceType maps a structured-object type string to its enum value.
// Returns ErrUnknownType for anything outside the fixed vocabulary.
func ParseDeviceType(s string) (wire.DeviceType, error) {
	t, ok := deviceTypesByKey[s]
	if !ok {
		return wire.DeviceTypeUnspecified, fmt.Errorf("%w %q", ErrUnknownType, s)
	}
	return t, nil
}

// ParseDeviceState maps a structured-object state string to its enum value.
// Returns ErrUnknownState for anything outside the fixed vocabulary.
func ParseDeviceState(s string) (wire.DeviceState, error) {
	st, ok := deviceStatesByKey[s]
	if !ok {
		return wire.DeviceStateUnspecified, fmt.Errorf("%w %q", ErrUnknownState, s)
	}
	return st, nil
}

// TypeKey returns the structured-object string for t.
func TypeKey(t wire.DeviceType) (string, bool) {
	k, ok := typeKeys[t]
	return k, ok
}

// StateKey returns the structured-object string for s.
func StateKey(s wire.DeviceState) (string, bool) {
	k, ok := stateKeys[s]
	return k, ok
}
