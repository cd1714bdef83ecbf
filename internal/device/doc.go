// Package device provides the StateDevice entity.
//
// A StateDevice is a physical device that can be described by a single
// discrete state: a light or ceiling fan (on/off), a doorbell
// (active/inactive) or a garage door (open/closed). Each device has an id, a
// human-readable name, a type and its current state.
//
// # Construction Paths
//
//	┌──────────────────┐   ┌──────────────────┐   ┌──────────────────┐
//	│     Builder      │   │    FromObject    │   │   FromMessage    │
//	│   (builder.go)   │   │    (decode.go)   │   │   (binary.go)    │
//	│                  │   │                  │   │                  │
//	│ • No validation  │   │ • All 4 required │   │ • id/state req.  │
//	│ • Staged fields  │   │ • Vocabulary     │   │ • name/type opt. │
//	└────────┬─────────┘   └────────┬─────────┘   └────────┬─────────┘
//	         │                      │                      │
//	         └──────────────────────┼──────────────────────┘
//	                                ▼
//	                        ┌───────────────┐
//	                        │  StateDevice  │──▶ ToMessage / MarshalBinary
//	                        └───────────────┘
//
// Only the object decoder validates its input. The builder is the trusted
// internal path and the binary path relies on the wire package, which rejects
// malformed messages before they reach FromMessage.
//
// # Key Types
//
//   - StateDevice: The entity. Immutable except for SetState.
//   - Builder: Staged construction without validation.
//   - wire.DeviceType / wire.DeviceState: The enums, owned by the wire schema.
//
// # Usage
//
//	// From parsed JSON
//	dev, err := device.FromJSON([]byte(`{"id":"d1","name":"Porch Light","type":"light","state":"on"}`))
//	if err != nil {
//	    return err // errors.Is(err, device.ErrInvalidArgument)
//	}
//
//	// To the wire
//	data, err := dev.MarshalBinary()
//
//	// Back from the wire; name and type may be absent
//	dev, err = device.DecodeBinary(data)
//	if name, ok := dev.Name(); ok {
//	    fmt.Println(name)
//	}
//
// # Partial Devices
//
// A device decoded from a wire message without name or type keeps those
// fields absent rather than defaulting them. Encoding such a device fails
// with ErrIncompleteDevice.
//
// # Thread Safety
//
// StateDevice is a plain value and is NOT safe for concurrent use. SetState
// mutates the receiver; callers sharing a device between goroutines must
// synchronise access themselves. Builder is likewise not thread-safe.
package device
