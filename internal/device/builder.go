package device

import "github.com/nerrad567/statedevice/internal/wire"

// Builder assembles a StateDevice field by field.
//
// Build performs no validation; any field may still be absent. Use it for
// trusted, in-process construction. The builder can be reused after Build,
// and later changes never reach devices it already produced.
type Builder struct {
	dev StateDevice
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetID sets the device identifier.
func (b *Builder) SetID(id string) *Builder {
	b.dev.id = id
	return b
}

// ID returns the identifier set so far.
func (b *Builder) ID() string {
	return b.dev.id
}

// SetName sets the device name. An empty string is a present name.
func (b *Builder) SetName(name string) *Builder {
	b.dev.name = name
	b.dev.hasName = true
	return b
}

// Name returns the name set so far and whether one was set.
func (b *Builder) Name() (string, bool) {
	return b.dev.Name()
}

// SetState sets the device state.
func (b *Builder) SetState(state wire.DeviceState) *Builder {
	b.dev.state = state
	return b
}

// State returns the state set so far.
func (b *Builder) State() wire.DeviceState {
	return b.dev.state
}

// SetType sets the device type.
func (b *Builder) SetType(typ wire.DeviceType) *Builder {
	b.dev.typ = typ
	return b
}

// Type returns the type set so far and whether one was set.
func (b *Builder) Type() (wire.DeviceType, bool) {
	return b.dev.Type()
}

// Build returns a snapshot of the current builder values.
func (b *Builder) Build() *StateDevice {
	return b.dev.Copy()
}
