// Package pkglog sets up the process-wide slog JSON logger and carries the
// request correlation ID in contexts.
package pkglog
