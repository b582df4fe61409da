// Package crockford implements the Crockford Base32 codec for 128-bit
// identifiers: a fixed 32-symbol alphabet over exactly 16 bytes, producing a
// 26-character string with no padding.
//
// # Alphabet
//
// The alphabet is "0123456789ABCDEFGHJKMNPQRSTVWXYZ". The letters I, L, O and
// U are excluded to avoid visual ambiguity. Decoding is case-insensitive and
// additionally accepts i/I/l/L as the digit 1 and o/O as the digit 0. Hyphens
// are skipped wherever they appear, so human-grouped input like
// "24S1G-1F1VK-5SKG0" decodes the same as its ungrouped form. U and u are not
// accepted.
//
// Usage:
//
//	s := crockford.Encode(raw)          // 26 uppercase symbols
//	raw, err := crockford.Decode(s)     // [16]byte or *DecodeError/*InvalidLengthError
package crockford
