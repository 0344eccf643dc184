package service

import "context"

// SettingsProvider reads app settings through a cache.
type SettingsProvider interface {
	// Get returns the value for key and whether it is set.
	Get(ctx context.Context, key string) (string, bool)
}
