package wire

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func typePtr(t DeviceType) *DeviceType { return &t }

func TestStateDeviceMessageRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  StateDeviceMessage
	}{
		{
			name: "complete light",
			msg:  *NewStateDeviceMessage("d1", "Porch Light", DeviceTypeLight, DeviceStateOn),
		},
		{
			name: "complete garage door",
			msg:  *NewStateDeviceMessage("d2", "Garage", DeviceTypeGarageDoor, DeviceStateClosed),
		},
		{
			name: "complete doorbell",
			msg:  *NewStateDeviceMessage("d3", "Front Door", DeviceTypeDoorbell, DeviceStateInactive),
		},
		{
			name: "name and type absent",
			msg:  StateDeviceMessage{ID: "d4", State: DeviceStateOff},
		},
		{
			name: "type absent",
			msg:  StateDeviceMessage{ID: "d5", Name: strPtr("Fan"), State: DeviceStateOn},
		},
		{
			name: "name absent",
			msg:  StateDeviceMessage{ID: "d6", Type: typePtr(DeviceTypeCeilingFan), State: DeviceStateOff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(&tt.msg)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			decoded, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if !reflect.DeepEqual(*decoded, tt.msg) {
				t.Errorf("round trip mismatch: got %+v, want %+v", *decoded, tt.msg)
			}
			if decoded.HasName() != tt.msg.HasName() {
				t.Errorf("HasName() = %v, want %v", decoded.HasName(), tt.msg.HasName())
			}
			if decoded.HasType() != tt.msg.HasType() {
				t.Errorf("HasType() = %v, want %v", decoded.HasType(), tt.msg.HasType())
			}
		})
	}
}

func TestEncode_OmitsAbsentKeys(t *testing.T) {
	data, err := Encode(&StateDeviceMessage{ID: "d1", State: DeviceStateOn})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var raw map[uint64]any
	if err := Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if _, ok := raw[KeyID]; !ok {
		t.Error("expected id key to be present")
	}
	if _, ok := raw[KeyState]; !ok {
		t.Error("expected state key to be present")
	}
	if _, ok := raw[KeyName]; ok {
		t.Error("expected name key to be absent")
	}
	if _, ok := raw[KeyType]; ok {
		t.Error("expected type key to be absent")
	}
}

func TestEncode_Deterministic(t *testing.T) {
	msg := NewStateDeviceMessage("d1", "Porch Light", DeviceTypeLight, DeviceStateOn)

	first, err := Encode(msg)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	second, err := Encode(msg)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("encodings differ: %x vs %x", first, second)
	}
}

func TestEncode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		msg  *StateDeviceMessage
	}{
		{name: "nil message", msg: nil},
		{name: "missing id", msg: &StateDeviceMessage{State: DeviceStateOn}},
		{name: "unspecified state", msg: &StateDeviceMessage{ID: "d1"}},
		{name: "state out of range", msg: &StateDeviceMessage{ID: "d1", State: 7}},
		{name: "type out of range", msg: &StateDeviceMessage{ID: "d1", State: DeviceStateOn, Type: typePtr(9)}},
		{name: "unspecified type present", msg: &StateDeviceMessage{ID: "d1", State: DeviceStateOn, Type: typePtr(DeviceTypeUnspecified)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.msg)
			if !errors.Is(err, ErrInvalidMessage) {
				t.Errorf("Encode() error = %v, want %v", err, ErrInvalidMessage)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	// Raw encodings bypass Encode's validation.
	missingID, _ := Marshal(map[int]any{KeyState: 1})
	badState, _ := Marshal(map[int]any{KeyID: "d1", KeyState: 42})
	badType, _ := Marshal(map[int]any{KeyID: "d1", KeyState: 1, KeyType: 8})
	wrongKind, _ := Marshal("not a map")
	stateOverflow, _ := Marshal(map[int]any{KeyID: "d1", KeyState: 300})

	tests := []struct {
		name string
		data []byte
	}{
		{name: "nil payload", data: nil},
		{name: "empty payload", data: []byte{}},
		{name: "garbage", data: []byte{0xff, 0x00, 0x13}},
		{name: "truncated map", data: []byte{0xa2, 0x01}},
		{name: "missing id", data: missingID},
		{name: "state out of range", data: badState},
		{name: "type out of range", data: badType},
		{name: "top level text", data: wrongKind},
		{name: "state overflows uint8", data: stateOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode(tt.data)
			if !errors.Is(err, ErrInvalidMessage) {
				t.Errorf("Decode() error = %v, want %v", err, ErrInvalidMessage)
			}
			if msg != nil {
				t.Errorf("Decode() returned %+v, want nil", msg)
			}
		})
	}
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {
	data, err := Marshal(map[int]any{KeyID: "d1", KeyState: 2, 99: "future"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if msg.ID != "d1" || msg.State != DeviceStateOff {
		t.Errorf("Decode() = %+v", msg)
	}
}

func TestStateDeviceMessage_Getters(t *testing.T) {
	empty := &StateDeviceMessage{ID: "d1", State: DeviceStateOn}
	if empty.GetName() != "" {
		t.Errorf("GetName() = %q, want empty", empty.GetName())
	}
	if empty.GetType() != DeviceTypeUnspecified {
		t.Errorf("GetType() = %v, want %v", empty.GetType(), DeviceTypeUnspecified)
	}

	full := NewStateDeviceMessage("d1", "Fan", DeviceTypeCeilingFan, DeviceStateOn)
	if full.GetName() != "Fan" {
		t.Errorf("GetName() = %q, want %q", full.GetName(), "Fan")
	}
	if full.GetType() != DeviceTypeCeilingFan {
		t.Errorf("GetType() = %v, want %v", full.GetType(), DeviceTypeCeilingFan)
	}
}
