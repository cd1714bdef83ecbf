package device

import (
	"log/slog"
	"strings"

	"github.com/nerrad567/statedevice/internal/wire"
)

// unsetField is printed by String for absent fields.
const unsetField = "<unset>"

// StateDevice represents a device that can be described by a discrete state.
//
// Fields are read through accessors. Name and Type report presence because a
// device decoded from a partial wire message may lack them. State is the only
// field that can change after construction.
type StateDevice struct {
	id      string
	name    string
	hasName bool
	typ     wire.DeviceType  // DeviceTypeUnspecified when absent
	state   wire.DeviceState // DeviceStateUnspecified when absent
}

// ID returns the device identifier.
func (d *StateDevice) ID() string {
	return d.id
}

// Name returns the device name and whether it is present.
func (d *StateDevice) Name() (string, bool) {
	return d.name, d.hasName
}

// Type returns the device type and whether it is present.
func (d *StateDevice) Type() (wire.DeviceType, bool) {
	return d.typ, d.typ != wire.DeviceTypeUnspecified
}

// State returns the current device state.
func (d *StateDevice) State() wire.DeviceState {
	return d.state
}

// SetState records a new observed or commanded state.
// Not safe for concurrent use.
func (d *StateDevice) SetState(state wire.DeviceState) {
	d.state = state
}

// IsComplete returns true if id, name, type and state are all present,
// i.e. the device can be encoded.
func (d *StateDevice) IsComplete() bool {
	return len(d.missingFields()) == 0
}

// missingFields lists absent fields in id, name, type, state order.
func (d *StateDevice) missingFields() []string {
	var missing []string
	if d.id == "" {
		missing = append(missing, KeyID)
	}
	if !d.hasName {
		missing = append(missing, KeyName)
	}
	if !d.typ.IsValid() {
		missing = append(missing, KeyType)
	}
	if !d.state.IsValid() {
		missing = append(missing, KeyState)
	}
	return missing
}

// Copy returns an independent copy of the device.
// Changing the state of the copy does not affect d.
func (d *StateDevice) Copy() *StateDevice {
	if d == nil {
		return nil
	}
	cpy := *d
	return &cpy
}

// String returns a multi-line summary for logs. It is not a wire format.
func (d *StateDevice) String() string {
	id := unsetField
	if d.id != "" {
		id = d.id
	}
	name := unsetField
	if d.hasName {
		name = d.name
	}
	typ := unsetField
	if d.typ != wire.DeviceTypeUnspecified {
		typ = d.typ.String()
	}
	state := unsetField
	if d.state != wire.DeviceStateUnspecified {
		state = d.state.String()
	}

	var b strings.Builder
	b.WriteString("\nDevice ID: ")
	b.WriteString(id)
	b.WriteString("\nDevice Name: ")
	b.WriteString(name)
	b.WriteString("\nDevice Type: ")
	b.WriteString(typ)
	b.WriteString("\nDevice State: ")
	b.WriteString(state)
	return b.String()
}

// LogValue implements slog.LogValuer. Absent fields are omitted.
func (d *StateDevice) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String(KeyID, d.id)}
	if d.hasName {
		attrs = append(attrs, slog.String(KeyName, d.name))
	}
	if d.typ != wire.DeviceTypeUnspecified {
		attrs = append(attrs, slog.String(KeyType, d.typ.String()))
	}
	attrs = append(attrs, slog.String(KeyState, d.state.String()))
	return slog.GroupValue(attrs...)
}
