package journal

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/leynos/crockford/pkg/cuuid"
)

// FsyncMode defines durability behavior for journal writes.
type FsyncMode int

const (
	// FsyncModeAlways requests a WAL fsync on each committed batch.
	FsyncModeAlways FsyncMode = iota
	// FsyncModeNever avoids forcing WAL syncs from the application. Pebble
	// may still sync based on its own policies.
	FsyncModeNever
)

// ParseFsyncMode converts a config string (always|never) to an FsyncMode.
func ParseFsyncMode(s string) (FsyncMode, error) {
	switch s {
	case "", "always":
		return FsyncModeAlways, nil
	case "never":
		return FsyncModeNever, nil
	default:
		return FsyncModeAlways, fmt.Errorf("journal: invalid fsync mode %q; use always|never", s)
	}
}

// ErrNotFound is returned by Lookup for identifiers the journal never minted.
var ErrNotFound = errors.New("journal: identifier not found")

// Entry is the stored record for one minted identifier.
type Entry struct {
	Version  int       `json:"version"`
	MintedAt time.Time `json:"minted_at"`
}

// Record pairs an identifier with its entry, as returned by Recent.
type Record struct {
	ID    cuuid.UUID
	Entry Entry
}

// Options configures the journal.
type Options struct {
	// DataDir is the path to the Pebble database directory.
	DataDir string
	// Fsync determines when to sync the WAL.
	Fsync FsyncMode
	// PebbleOptions allows advanced tuning. If nil, defaults are used.
	PebbleOptions *pebble.Options
}

// Journal records minted identifiers in a Pebble database.
type Journal struct {
	db        *pebble.DB
	writeSync bool
}

// Open creates or opens the journal at opts.DataDir.
func Open(opts Options) (*Journal, error) {
	if opts.DataDir == "" {
		return nil, errors.New("journal: Options.DataDir is required")
	}
	po := opts.PebbleOptions
	if po == nil {
		po = &pebble.Options{}
	}
	db, err := pebble.Open(opts.DataDir, po)
	if err != nil {
		return nil, err
	}
	return &Journal{db: db, writeSync: opts.Fsync == FsyncModeAlways}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

const (
	idPrefix   = 'i'
	timePrefix = 't'
)

func idKey(id cuuid.UUID) []byte {
	k := make([]byte, 1+cuuid.Size)
	k[0] = idPrefix
	copy(k[1:], id.Bytes())
	return k
}

func timeKey(at time.Time, id cuuid.UUID) []byte {
	k := make([]byte, 1+8+cuuid.Size)
	k[0] = timePrefix
	binary.BigEndian.PutUint64(k[1:9], uint64(at.UnixNano()))
	copy(k[9:], id.Bytes())
	return k
}

// Append adds one minted identifier to the journal. Both the lookup row and
// the time-ordered row commit in a single batch.
func (j *Journal) Append(id cuuid.UUID, e Entry) error {
	val, err := json.Marshal(e)
	if err != nil {
		return err
	}
	b := j.db.NewBatch()
	defer b.Close()
	if err := b.Set(idKey(id), val, nil); err != nil {
		return err
	}
	if err := b.Set(timeKey(e.MintedAt, id), nil, nil); err != nil {
		return err
	}
	sync := pebble.NoSync
	if j.writeSync {
		sync = pebble.Sync
	}
	return b.Commit(sync)
}

// Lookup returns the entry for id, or ErrNotFound.
func (j *Journal) Lookup(id cuuid.UUID) (Entry, error) {
	val, closer, err := j.db.Get(idKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	defer closer.Close()
	var e Entry
	if err := json.Unmarshal(val, &e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Count returns the number of journaled identifiers.
func (j *Journal) Count() (int, error) {
	it, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{idPrefix},
		UpperBound: []byte{idPrefix + 1},
	})
	if err != nil {
		return 0, err
	}
	defer it.Close()
	n := 0
	for it.First(); it.Valid(); it.Next() {
		n++
	}
	return n, it.Error()
}

// Recent returns up to n records, most recently minted first.
func (j *Journal) Recent(n int) ([]Record, error) {
	if n < 1 {
		return nil, nil
	}
	it, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{timePrefix},
		UpperBound: []byte{timePrefix + 1},
	})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []Record
	for ok := it.Last(); ok && len(out) < n; ok = it.Prev() {
		key := it.Key()
		if len(key) != 1+8+cuuid.Size {
			continue
		}
		id, err := cuuid.FromBytes(key[9:])
		if err != nil {
			return nil, err
		}
		e, err := j.Lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, Record{ID: id, Entry: e})
	}
	return out, it.Error()
}
