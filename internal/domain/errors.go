package domain

import "errors"

// Domain errors.
var (
	ErrQuotaExceeded   = errors.New("daily translation quota exceeded")
	ErrTranslateFailed = errors.New("translation request failed")
	ErrInvalidLanguage = errors.New("invalid language code")
)
