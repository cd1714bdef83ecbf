package wire

// DeviceType is the kind of physical device a message describes.
type DeviceType uint8

const (
	// DeviceTypeUnspecified is the zero value and never valid on the wire.
	DeviceTypeUnspecified DeviceType = 0

	DeviceTypeLight      DeviceType = 1
	DeviceTypeCeilingFan DeviceType = 2
	DeviceTypeGarageDoor DeviceType = 3
	DeviceTypeDoorbell   DeviceType = 4
)

// AllDeviceTypes returns every valid device type.
func AllDeviceTypes() []DeviceType {
	return []DeviceType{
		DeviceTypeLight, DeviceTypeCeilingFan, DeviceTypeGarageDoor, DeviceTypeDoorbell,
	}
}

// IsValid returns true if t is a known, non-zero device type.
func (t DeviceType) IsValid() bool {
	return t >= DeviceTypeLight && t <= DeviceTypeDoorbell
}

// String returns the device type name.
func (t DeviceType) String() string {
	switch t {
	case DeviceTypeLight:
		return "LIGHT"
	case DeviceTypeCeilingFan:
		return "CEILINGFAN"
	case DeviceTypeGarageDoor:
		return "GARAGEDOOR"
	case DeviceTypeDoorbell:
		return "DOORBELL"
	default:
		return "UNKNOWN"
	}
}

// DeviceState is the discrete runtime state of a device.
//
// Which states make sense depends on the device type: lights and fans are
// ON/OFF, doorbells ACTIVE/INACTIVE, garage doors OPEN/CLOSED. The wire format
// does not enforce the pairing.
type DeviceState uint8

const (
	// DeviceStateUnspecified is the zero value and never valid on the wire.
	DeviceStateUnspecified DeviceState = 0

	DeviceStateOn       DeviceState = 1
	DeviceStateOff      DeviceState = 2
	DeviceStateActive   DeviceState = 3
	DeviceStateInactive DeviceState = 4
	DeviceStateOpen     DeviceState = 5
	DeviceStateClosed   DeviceState = 6
)

// AllDeviceStates returns every valid device state.
func AllDeviceStates() []DeviceState {
	return []DeviceState{
		DeviceStateOn, DeviceStateOff,
		DeviceStateActive, DeviceStateInactive,
		DeviceStateOpen, DeviceStateClosed,
	}
}

// IsValid returns true if s is a known, non-zero device state.
func (s DeviceState) IsValid() bool {
	return s >= DeviceStateOn && s <= DeviceStateClosed
}

// String returns the device state name.
func (s DeviceState) String() string {
	switch s {
	case DeviceStateOn:
		return "ON"
	case DeviceStateOff:
		return "OFF"
	case DeviceStateActive:
		return "ACTIVE"
	case DeviceStateInactive:
		return "INACTIVE"
	case DeviceStateOpen:
		return "OPEN"
	case DeviceStateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}
