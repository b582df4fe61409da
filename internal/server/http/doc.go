// Package httpserver exposes the minting service's HTTP/JSON API: health,
// mint, decode, journal lookup and recent listing. It is the host adapter
// over pkg/cuuid and internal/journal; all identifier semantics live in
// those packages.
package httpserver
