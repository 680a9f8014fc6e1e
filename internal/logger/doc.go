// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a sane console encoder,
//   - context helpers (FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (InfoKV, ErrorKV, etc.).
//
// The scheduler, the dispatcher and the gRPC transport all take a context and
// log through the logger stored in it, so every delivery attempt carries the
// alarm id and owner without threading a logger through constructors.
package logger
