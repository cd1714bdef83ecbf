// Package logging provides structured logging for the statedevice tools.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging.
//
// # Features
//
//   - JSON output (machine-parsable)
//   - Text output (human-readable, the default for the command line)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig section:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("decoded device", "device", dev)
//	logger.Error("failed to decode", "error", err)
//
// Devices implement slog.LogValuer, so passing one as an attribute logs its
// fields as a group.
package logging
