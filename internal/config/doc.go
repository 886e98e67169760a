// Package config provides 12-factor configuration management.
//
// Configuration is loaded from environment variables with sensible defaults.
// Partition-root overrides (ANDROID_ROOT, VENDOR_ROOT, ...) are deliberately
// not handled here: those follow the platform rule that an empty value counts
// as unset, which the environ package resolves itself.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - User: Ambient user handle and strict-mode default
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("acting for user %d\n", cfg.User.Handle)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - AM_USER_HANDLE, AM_USER_REQUIRED
package config
