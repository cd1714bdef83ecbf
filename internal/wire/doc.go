// Package wire defines the binary wire format for state device messages.
//
// Messages are CBOR (RFC 8949) maps with integer keys. Encoding is
// deterministic so identical devices always produce identical bytes.
//
// # Message Layout
//
//	{
//	  1: id,      // text, required
//	  2: name,    // text, optional
//	  3: type,    // uint8 DeviceType, optional
//	  4: state    // uint8 DeviceState, required
//	}
//
// # Absent vs Zero
//
// Optional fields are pointers. A nil pointer means the key is absent from
// the message; HasName and HasType report presence. Enum value 0 is reserved
// as "unspecified" and is rejected by Validate.
//
// Decode validates every message, so callers never see an id-less message or
// an out-of-range enum.
package wire
