// Package logging provides structured logging using uber/zap.
//
// This package offers production-ready logging with two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The environ package uses a Logger as its diagnostic sink: fallback
// warnings and strict-mode violations are reported here and nowhere else.
// Logging is best-effort; callers never see an error because a diagnostic
// could not be written.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Warn("EXTERNAL_STORAGE undefined", zap.String("default", path))
//	logger.Error("volume query failed", zap.Error(err))
package logging
