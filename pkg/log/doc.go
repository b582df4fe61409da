// Package log provides the structured logging facade used by cuuid commands
// and the minting server.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. It is backed by Go's standard library
// slog with text or JSON handlers, so output format and level are chosen
// declaratively and the rest of the codebase stays against the facade.
//
// Quick start
//
//	l, _ := log.ApplyConfig(&log.Config{Level: "info", Format: "text"})
//	l = l.With(log.Component("server"))
//	l.Info("listening", log.Str("addr", ":8080"))
//
// # Interop
//
// To capture stdlib logs from libraries (Pebble logs through log.Printf),
// use RedirectStdLog.
package log
