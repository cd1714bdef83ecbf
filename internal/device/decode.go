package device

import (
	"encoding/json"
	"fmt"
)

// Structured-object keys.
const (
	KeyID    = "id"
	KeyName  = "name"
	KeyState = "state"
	KeyType  = "type"
)

// requiredKeys are checked in this order; the first missing key is reported.
var requiredKeys = []string{KeyID, KeyName, KeyState, KeyType}

// FromObject decodes a generic key-value object, such as parsed JSON or YAML,
// into a fully populated StateDevice.
//
// Checks run in order and the first failure is returned:
//  1. id, name, state and type must all be present as strings (ErrMissingField).
//     An empty id counts as missing.
//  2. type must be a known type key (ErrUnknownType).
//  3. state must be a known state key (ErrUnknownState).
//
// No device is returned on failure.
func FromObject(obj map[string]any) (*StateDevice, error) {
	fields := make(map[string]string, len(requiredKeys))
	for _, key := range requiredKeys {
		v, ok := obj[key].(string)
		if !ok || (key == KeyID && v == "") {
			return nil, fmt.Errorf("%w %q", ErrMissingField, key)
		}
		fields[key] = v
	}

	typ, err := ParseDeviceType(fields[KeyType])
	if err != nil {
		return nil, err
	}

	state, err := ParseDeviceState(fields[KeyState])
	if err != nil {
		return nil, err
	}

	return &StateDevice{
		id:      fields[KeyID],
		name:    fields[KeyName],
		hasName: true,
		typ:     typ,
		state:   state,
	}, nil
}

// FromJSON parses a JSON object and decodes it with FromObject.
// Input that is not a JSON object fails with ErrInvalidArgument.
func FromJSON(data []byte) (*StateDevice, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: parsing JSON: %v", ErrInvalidArgument, err)
	}
	return FromObject(obj)
}

// ToObject returns the structured-object form of a complete device.
// FromObject(ToObject(d)) reproduces d.
func (d *StateDevice) ToObject() (map[string]any, error) {
	if err := d.checkComplete(); err != nil {
		return nil, err
	}

	typeKey, _ := TypeKey(d.typ)
	stateKey, _ := StateKey(d.state)

	return map[string]any{
		KeyID:    d.id,
		KeyName:  d.name,
		KeyState: stateKey,
		KeyType:  typeKey,
	}, nil
}

// MarshalJSON encodes a complete device as a JSON object using the same keys
// and vocabulary FromJSON accepts.
func (d *StateDevice) MarshalJSON() ([]byte, error) {
	obj, err := d.ToObject()
	if err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}
