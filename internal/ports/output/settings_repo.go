package output

import "context"

// SettingsRepository persists small single-value settings (e.g. the health
// notification channel) as key/value pairs.
type SettingsRepository interface {
	// Get returns the stored value, or "" when the key has never been set.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
