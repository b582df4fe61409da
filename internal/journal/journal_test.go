package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/leynos/crockford/pkg/cuuid"
)

func openTest(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(Options{DataDir: t.TempDir(), Fsync: FsyncModeNever})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestAppendLookup(t *testing.T) {
	j := openTest(t)
	id := cuuid.Must(cuuid.New())
	at := time.Now().UTC().Truncate(time.Microsecond)

	if err := j.Append(id, Entry{Version: 4, MintedAt: at}); err != nil {
		t.Fatalf("append: %v", err)
	}
	e, err := j.Lookup(id)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if e.Version != 4 || !e.MintedAt.Equal(at) {
		t.Fatalf("entry: %+v", e)
	}
}

func TestLookupNotFound(t *testing.T) {
	j := openTest(t)
	_, err := j.Lookup(cuuid.Must(cuuid.New()))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err: %v, want ErrNotFound", err)
	}
}

func TestCount(t *testing.T) {
	j := openTest(t)
	for i := 0; i < 5; i++ {
		id := cuuid.Must(cuuid.New())
		if err := j.Append(id, Entry{Version: 4, MintedAt: time.Now().UTC()}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	n, err := j.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Fatalf("count: %d", n)
	}
}

func TestRecentOrder(t *testing.T) {
	j := openTest(t)
	base := time.Unix(1700000000, 0).UTC()
	var ids []cuuid.UUID
	for i := 0; i < 4; i++ {
		id := cuuid.Must(cuuid.New())
		ids = append(ids, id)
		at := base.Add(time.Duration(i) * time.Second)
		if err := j.Append(id, Entry{Version: 4, MintedAt: at}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := j.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("recent len: %d", len(recs))
	}
	// Most recently minted first.
	if recs[0].ID != ids[3] || recs[1].ID != ids[2] {
		t.Fatalf("recent order: %v", recs)
	}

	all, err := j.Recent(100)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("recent all len: %d", len(all))
	}
}

func TestParseFsyncMode(t *testing.T) {
	if m, err := ParseFsyncMode(""); err != nil || m != FsyncModeAlways {
		t.Fatalf("empty: %v %v", m, err)
	}
	if m, err := ParseFsyncMode("never"); err != nil || m != FsyncModeNever {
		t.Fatalf("never: %v %v", m, err)
	}
	if _, err := ParseFsyncMode("interval"); err == nil {
		t.Fatalf("expected error for interval")
	}
}

func TestOpenRequiresDataDir(t *testing.T) {
	if _, err := Open(Options{}); err == nil {
		t.Fatalf("expected error for missing data dir")
	}
}
