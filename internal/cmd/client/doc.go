// Package client implements the cuuid CLI subcommands: local minting and
// codec operations, plus lookups against a running minting server.
package client
