package cuuid

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// NowMs returns current time in milliseconds since Unix epoch.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// maxSeq is the largest sequence that fits the 12-bit rand_a field.
const maxSeq = 1<<12 - 1

// Generator produces strictly increasing version 7 UUIDs per process. Values
// minted within the same millisecond are ordered by a 12-bit sequence in the
// rand_a field.
type Generator struct {
	mu     sync.Mutex
	lastMs int64
	seq    uint16
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator { return &Generator{} }

// Next returns a new version 7 UUID. If the clock goes backwards, it reuses
// the last seen millisecond and keeps sequencing. If the sequence overflows
// within the same millisecond, it waits for the next ms.
func (g *Generator) Next() (UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := NowMs()
	if ms < g.lastMs {
		ms = g.lastMs
	}

	if ms == g.lastMs {
		if g.seq == maxSeq {
			for {
				ms = NowMs()
				if ms > g.lastMs {
					break
				}
				time.Sleep(time.Millisecond / 8)
			}
			g.seq = 0
		} else {
			g.seq++
		}
	} else {
		g.seq = 0
	}

	g.lastMs = ms
	return makeV7(ms, g.seq)
}

// makeV7 lays out a version 7 UUID: 48-bit big-endian ms timestamp, version
// and sequence in bytes 6-7, variant bits over a random tail.
func makeV7(ms int64, seq uint16) (UUID, error) {
	var u UUID
	binary.BigEndian.PutUint64(u[:8], uint64(ms)<<16)
	if _, err := rand.Read(u[8:]); err != nil {
		return Nil, err
	}
	u[6] = 0x70 | byte(seq>>8)
	u[7] = byte(seq)
	u[8] = 0x80 | u[8]&0x3F
	return u, nil
}
