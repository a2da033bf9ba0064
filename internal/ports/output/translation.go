package output

import "context"

// TranslationProvider is the external machine-translation API. It knows
// nothing about quotas; quota enforcement lives in the application layer.
type TranslationProvider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
