// Package cuuid provides a 128-bit identifier whose string form is Crockford
// Base32 rather than the dashed hex of RFC 4122.
//
// # Format
//
// A UUID is an immutable 16-byte value. It is constructed from any of three
// forms: the 26-character Crockford string (Parse), a raw 16-byte buffer
// (FromBytes), or a standard github.com/google/uuid value (FromUUID). All
// three views are available back out via String, Bytes and UUID.
//
// UUID is a comparable array type: == compares byte-for-byte and values can
// be used as map keys directly. Ordering comparisons are deliberately not
// provided.
//
// # Generation
//
// New mints a random (version 4) value and NewOrdered a time-ordered
// (version 7) value. Generator additionally guarantees that version 7 values
// minted by one process are strictly increasing, pinning the timestamp when
// the clock regresses and sequencing values minted within one millisecond.
//
// Usage
//
//	u, err := cuuid.Parse("24S1G1F1VK5SKG0VK5SKG0G010")
//	s := u.String()      // Crockford form
//	raw := u.Bytes()     // 16-byte copy
//	std := u.UUID()      // google/uuid interop
package cuuid
