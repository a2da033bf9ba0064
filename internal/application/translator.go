package application

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"translatorbot/internal/domain"
	"translatorbot/internal/ports/output"
)

// TranslateGateway wraps the translation provider with quota enforcement.
//
// The quota is charged before the provider call is made, and is not refunded
// when the call fails. That guards capacity pessimistically at the cost of
// charging for failed calls.
type TranslateGateway struct {
	provider output.TranslationProvider
	ledger   *UsageLedger
}

func NewTranslateGateway(provider output.TranslationProvider, ledger *UsageLedger) *TranslateGateway {
	return &TranslateGateway{provider: provider, ledger: ledger}
}

// Translate returns the translated text, domain.ErrQuotaExceeded when today's
// quota would be exceeded (no provider call is made), or
// domain.ErrTranslateFailed when the provider call fails. Retries are the
// caller's responsibility.
func (g *TranslateGateway) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if !g.ledger.TryConsume(utf8.RuneCountInString(text)) {
		return "", domain.ErrQuotaExceeded
	}

	out, err := g.provider.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		log.Printf("❌ Translation failed (%s→%s): %v", sourceLang, targetLang, err)
		return "", fmt.Errorf("%w (%s→%s)", domain.ErrTranslateFailed, sourceLang, targetLang)
	}
	return out, nil
}
