package crockford

import (
	"encoding/base32"
	"fmt"
	"sync"
)

// Size is the fixed payload size in bytes.
const Size = 16

// EncodedLen is the length of the string form: 128 bits in 5-bit groups.
const EncodedLen = 26

// Alphabet is the canonical 32-symbol set, in value order.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// DecodeError reports a symbol the decoder cannot accept: a character outside
// the alphabet after case folding, substitution and hyphen removal, or a
// final symbol whose padding bits are non-zero.
type DecodeError struct {
	Pos  int
	Char rune
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("crockford: invalid symbol %q at position %d", e.Char, e.Pos)
}

// InvalidLengthError reports a decoded payload that is not exactly Size
// bytes. Bytes is the payload size the significant symbols decode to;
// Symbols is how many there were after hyphen removal.
type InvalidLengthError struct {
	Bytes   int
	Symbols int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("crockford: expected %d bytes (%d symbols), got %d bytes (%d symbols)",
		Size, EncodedLen, e.Bytes, e.Symbols)
}

type codecTables struct {
	enc *base32.Encoding
	// norm maps an ASCII input byte to its canonical symbol, or 0 to reject.
	norm [128]byte
	// val maps a canonical symbol to its 5-bit value, or -1.
	val [128]int8
}

// tables builds the shared alphabet tables on first use. They are read-only
// afterwards and safe for concurrent callers.
var tables = sync.OnceValue(func() *codecTables {
	t := &codecTables{enc: base32.NewEncoding(Alphabet).WithPadding(base32.NoPadding)}
	for i := range t.val {
		t.val[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		t.norm[c] = c
		t.val[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			t.norm[c+'a'-'A'] = c
		}
	}
	// Commonly mistyped characters fold to the digit they resemble. U stays
	// rejected.
	for _, c := range []byte{'i', 'I', 'l', 'L'} {
		t.norm[c] = '1'
	}
	for _, c := range []byte{'o', 'O'} {
		t.norm[c] = '0'
	}
	return t
})

// Encode returns the canonical 26-character Crockford Base32 string for b.
func Encode(b [Size]byte) string {
	return tables().enc.EncodeToString(b[:])
}

// Decode parses a Crockford Base32 string into 16 bytes. Input may be any
// mix of upper and lower case, may substitute i/l for 1 and o for 0, and may
// contain hyphens at arbitrary positions.
func Decode(s string) ([Size]byte, error) {
	var out [Size]byte
	t := tables()

	norm := make([]byte, 0, EncodedLen)
	pos := make([]int, 0, EncodedLen)
	for i, r := range s {
		if r == '-' {
			continue
		}
		if r >= 128 || t.norm[r] == 0 {
			return out, &DecodeError{Pos: i, Char: r}
		}
		norm = append(norm, t.norm[r])
		pos = append(pos, i)
	}
	if len(norm) != EncodedLen {
		return out, &InvalidLengthError{Bytes: len(norm) * 5 / 8, Symbols: len(norm)}
	}
	// The final symbol carries 2 padding bits beyond the 128th; they must be
	// zero or the string is not a Crockford form of any 16-byte value.
	if last := norm[EncodedLen-1]; t.val[last]&0x03 != 0 {
		return out, &DecodeError{Pos: pos[EncodedLen-1], Char: rune(last)}
	}
	if _, err := t.enc.Decode(out[:], norm); err != nil {
		return out, err
	}
	return out, nil
}
