// Package journal provides the Pebble-backed record of identifiers minted by
// the server.
//
// # Layout
//
// Each minted identifier is stored twice: under "i" + raw 16 bytes with a
// JSON entry (version, minted_at), and under "t" + big-endian unix-nano +
// raw 16 bytes with an empty value. The first keyspace serves point lookups
// in identifier order; the second serves the recent listing in mint order.
// Both writes commit in one batch under the configured fsync policy.
//
// Usage:
//
//	j, err := journal.Open(journal.Options{DataDir: "./data/journal"})
//	if err != nil { /* handle */ }
//	defer j.Close()
//
//	_ = j.Record(id, journal.Entry{Version: 7, MintedAt: time.Now().UTC()})
//	e, err := j.Lookup(id)
package journal
