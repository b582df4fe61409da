package cuuid

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"

	"github.com/leynos/crockford/pkg/crockford"
)

// Size is the fixed identifier size in bytes.
const Size = crockford.Size

// UUID is an immutable 128-bit identifier. The zero value is the nil UUID.
type UUID [Size]byte

// Nil is the all-zero UUID.
var Nil UUID

// WrongByteCountError reports a raw-byte constructor input that is not
// exactly 16 bytes. It is distinct from the codec's InvalidLengthError: no
// decoding was involved, the buffer itself had the wrong size.
type WrongByteCountError struct {
	Len int
}

func (e *WrongByteCountError) Error() string {
	return fmt.Sprintf("cuuid: byte input must be %d bytes, got %d", Size, e.Len)
}

// UnsupportedInputError reports a FromValue input that matches none of the
// three accepted forms.
type UnsupportedInputError struct {
	Value any
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("cuuid: expected Crockford string, %d bytes, or uuid.UUID, got %T", Size, e.Value)
}

// Parse decodes the Crockford string form. Codec errors propagate unchanged.
func Parse(s string) (UUID, error) {
	b, err := crockford.Decode(s)
	if err != nil {
		return Nil, err
	}
	return UUID(b), nil
}

// MustParse is Parse for statically known inputs; it panics on error.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromBytes adopts a raw 16-byte buffer.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, &WrongByteCountError{Len: len(b)}
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// FromUUID adopts the bytes of a standard UUID. It cannot fail.
func FromUUID(fu uuid.UUID) UUID {
	return UUID(fu)
}

// FromValue constructs a UUID from an untyped value holding one of the three
// accepted forms. It exists for boundary code (CLI input, decoded JSON);
// typed callers should use Parse, FromBytes or FromUUID directly.
func FromValue(v any) (UUID, error) {
	switch x := v.(type) {
	case string:
		return Parse(x)
	case []byte:
		return FromBytes(x)
	case uuid.UUID:
		return FromUUID(x), nil
	case UUID:
		return x, nil
	default:
		return Nil, &UnsupportedInputError{Value: v}
	}
}

// String returns the canonical 26-character Crockford form.
func (u UUID) String() string {
	return crockford.Encode([Size]byte(u))
}

// GoString returns a type-tagged form for diagnostics.
func (u UUID) GoString() string {
	return fmt.Sprintf("cuuid.UUID('%s')", u.String())
}

// Bytes returns a copy of the raw 16-byte representation.
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// UUID returns the standard-library-style uuid.UUID view for interop.
func (u UUID) UUID() uuid.UUID {
	return uuid.UUID(u)
}

// Version returns the RFC 4122 version field.
func (u UUID) Version() int {
	return int(u[6] >> 4)
}

// MarshalText renders the Crockford form; JSON encoding goes through this.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText parses the Crockford form.
func (u *UUID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Value implements driver.Valuer, storing the Crockford string.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts the Crockford string form and raw
// 16-byte columns; NULL scans to Nil.
func (u *UUID) Scan(src any) error {
	switch x := src.(type) {
	case nil:
		*u = Nil
		return nil
	case string:
		parsed, err := Parse(x)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	case []byte:
		if len(x) == Size {
			copy(u[:], x)
			return nil
		}
		parsed, err := Parse(string(x))
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	default:
		return &UnsupportedInputError{Value: src}
	}
}

// New mints a random version 4 UUID from crypto/rand.
func New() (UUID, error) {
	fu, err := uuid.NewRandom()
	if err != nil {
		return Nil, err
	}
	return FromUUID(fu), nil
}

// NewOrdered mints a time-ordered version 7 UUID. Values minted later in
// wall-clock time sort at or after earlier ones, as raw bytes and therefore
// as Crockford strings.
func NewOrdered() (UUID, error) {
	fu, err := uuid.NewV7()
	if err != nil {
		return Nil, err
	}
	return FromUUID(fu), nil
}

// Must unwraps a (UUID, error) pair, panicking on error.
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}
