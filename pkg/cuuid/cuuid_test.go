package cuuid

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/leynos/crockford/pkg/crockford"
)

func TestConstructorEquivalence(t *testing.T) {
	raw := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	fromBytes, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("from bytes: %v", err)
	}
	fromString, err := Parse(fromBytes.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	fromUUID := FromUUID(uuid.UUID(fromBytes))

	if fromBytes != fromString || fromBytes != fromUUID {
		t.Fatalf("constructors disagree: %v %v %v", fromBytes, fromString, fromUUID)
	}

	// Equal values hash identically: all three land on one map key.
	seen := map[UUID]int{}
	seen[fromBytes]++
	seen[fromString]++
	seen[fromUUID]++
	if len(seen) != 1 || seen[fromBytes] != 3 {
		t.Fatalf("map key collapse: %v", seen)
	}
}

func TestFromBytesWrongSize(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		_, err := FromBytes(make([]byte, n))
		var wc *WrongByteCountError
		if !errors.As(err, &wc) {
			t.Fatalf("n=%d: err %v, want WrongByteCountError", n, err)
		}
		if wc.Len != n {
			t.Fatalf("n=%d: reported %d", n, wc.Len)
		}
	}
}

func TestParsePropagatesCodecErrors(t *testing.T) {
	_, err := Parse("ABC")
	var le *crockford.InvalidLengthError
	if !errors.As(err, &le) {
		t.Fatalf("short parse: err %v", err)
	}

	_, err = Parse("**************************")
	var de *crockford.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("bad symbol parse: err %v", err)
	}
}

func TestFromValue(t *testing.T) {
	want := MustParse("00000000000000000000000004")

	cases := []any{
		"00000000000000000000000004",
		want.Bytes(),
		want.UUID(),
		want,
	}
	for _, v := range cases {
		got, err := FromValue(v)
		if err != nil {
			t.Fatalf("from value %T: %v", v, err)
		}
		if got != want {
			t.Fatalf("from value %T: %v", v, got)
		}
	}

	_, err := FromValue(42)
	var ue *UnsupportedInputError
	if !errors.As(err, &ue) {
		t.Fatalf("int input: err %v, want UnsupportedInputError", err)
	}
}

func TestViews(t *testing.T) {
	u := Must(New())

	// Bytes is a copy; mutating it must not reach the value.
	b := u.Bytes()
	b[0] ^= 0xFF
	if bytes.Equal(b, u.Bytes()) {
		t.Fatalf("Bytes returned shared storage")
	}

	s := u.String()
	if len(s) != crockford.EncodedLen {
		t.Fatalf("string length: %d", len(s))
	}
	back, err := Parse(s)
	if err != nil {
		t.Fatalf("parse view: %v", err)
	}
	if back != u {
		t.Fatalf("string view round trip")
	}

	if got, want := u.GoString(), "cuuid.UUID('"+s+"')"; got != want {
		t.Fatalf("gostring: %q, want %q", got, want)
	}

	if FromUUID(u.UUID()) != u {
		t.Fatalf("uuid view round trip")
	}
}

func TestTextAndJSON(t *testing.T) {
	type doc struct {
		ID UUID `json:"id"`
	}
	u := Must(NewOrdered())

	out, err := json.Marshal(doc{ID: u})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"` + u.String() + `"}`
	if string(out) != want {
		t.Fatalf("marshal: %s, want %s", out, want)
	}

	var in doc
	if err := json.Unmarshal(out, &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in.ID != u {
		t.Fatalf("unmarshal: %v", in.ID)
	}

	var bad doc
	if err := json.Unmarshal([]byte(`{"id":"nope"}`), &bad); err == nil {
		t.Fatalf("expected error for invalid id")
	}
}

func TestSQLRoundTrip(t *testing.T) {
	u := Must(New())

	v, err := u.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	s, ok := v.(string)
	if !ok || s != u.String() {
		t.Fatalf("value: %v", v)
	}

	var fromString UUID
	if err := fromString.Scan(s); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	var fromRaw UUID
	if err := fromRaw.Scan(u.Bytes()); err != nil {
		t.Fatalf("scan raw: %v", err)
	}
	var fromNull UUID
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("scan null: %v", err)
	}
	if fromString != u || fromRaw != u || fromNull != Nil {
		t.Fatalf("scan results: %v %v %v", fromString, fromRaw, fromNull)
	}

	var bad UUID
	if err := bad.Scan(3.14); err == nil {
		t.Fatalf("expected error for float scan")
	}
}

func TestNewVersionAndVariantBits(t *testing.T) {
	u := Must(New())
	if u.Version() != 4 {
		t.Fatalf("version: %d", u.Version())
	}
	if u[8]&0xC0 != 0x80 {
		t.Fatalf("variant byte: %08b", u[8])
	}

	o := Must(NewOrdered())
	if o.Version() != 7 {
		t.Fatalf("ordered version: %d", o.Version())
	}
	if o[8]&0xC0 != 0x80 {
		t.Fatalf("ordered variant byte: %08b", o[8])
	}
}

func TestNewNoDuplicates(t *testing.T) {
	const n = 10000
	seen := make(map[UUID]struct{}, n)
	for i := 0; i < n; i++ {
		u := Must(New())
		if _, dup := seen[u]; dup {
			t.Fatalf("duplicate after %d mints: %v", i, u)
		}
		seen[u] = struct{}{}
	}
}

func TestNewOrderedSortsByTime(t *testing.T) {
	a := Must(NewOrdered())
	time.Sleep(2 * time.Millisecond)
	b := Must(NewOrdered())
	if bytes.Compare(a[:], b[:]) >= 0 {
		t.Fatalf("expected %v < %v", a, b)
	}
	// Byte order and string order agree: the alphabet is monotonic.
	if !(a.String() < b.String()) {
		t.Fatalf("expected %q < %q", a.String(), b.String())
	}
}
