package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translatorbot/internal/domain"
)

type fakeProvider struct {
	out   string
	err   error
	calls int
}

func (p *fakeProvider) Translate(_ context.Context, text, _, _ string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.out, nil
}

func TestGatewayTranslates(t *testing.T) {
	provider := &fakeProvider{out: "hello"}
	ledger := NewUsageLedger(100)
	ledger.now = frozen("2026-08-29")
	g := NewTranslateGateway(provider, ledger)

	out, err := g.Translate(context.Background(), "안녕하세요", "ko", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, used, _ := ledger.Usage()
	assert.Equal(t, 5, used, "usage counts characters, not bytes")
}

func TestGatewayQuotaExceededSkipsProvider(t *testing.T) {
	provider := &fakeProvider{out: "hello"}
	ledger := NewUsageLedger(3)
	ledger.now = frozen("2026-08-29")
	g := NewTranslateGateway(provider, ledger)

	_, err := g.Translate(context.Background(), "안녕하세요", "ko", "en")
	require.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Zero(t, provider.calls, "no network call once the quota is hit")

	_, used, _ := ledger.Usage()
	assert.Zero(t, used)
}

func TestGatewayProviderFailureStillCharges(t *testing.T) {
	// The quota is consumed before the call and not refunded on failure.
	provider := &fakeProvider{err: errors.New("boom")}
	ledger := NewUsageLedger(100)
	ledger.now = frozen("2026-08-29")
	g := NewTranslateGateway(provider, ledger)

	_, err := g.Translate(context.Background(), "hello", "en", "ko")
	require.ErrorIs(t, err, domain.ErrTranslateFailed)

	_, used, _ := ledger.Usage()
	assert.Equal(t, 5, used)
}
