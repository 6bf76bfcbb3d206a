package pkgconfig

import "time"

// Config is the read-only view of application configuration.
type Config interface {
	GetBool(key string) bool
	GetString(key string) string
	GetDuration(key string) time.Duration
	Close() error
}
