package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translatorbot/internal/domain"
	"translatorbot/internal/domain/entities"
)

type memBindingRepo struct {
	rows    map[string]string
	upserts int
}

func newMemBindingRepo() *memBindingRepo {
	return &memBindingRepo{rows: make(map[string]string)}
}

func (r *memBindingRepo) Upsert(_ context.Context, b entities.ChannelBinding) error {
	r.upserts++
	r.rows[b.ChannelID] = b.Language
	return nil
}

func (r *memBindingRepo) Delete(_ context.Context, channelID string) error {
	delete(r.rows, channelID)
	return nil
}

func (r *memBindingRepo) List(_ context.Context) ([]entities.ChannelBinding, error) {
	out := make([]entities.ChannelBinding, 0, len(r.rows))
	for id, lang := range r.rows {
		out = append(out, entities.ChannelBinding{ChannelID: id, Language: lang})
	}
	return out, nil
}

type memSettingsRepo struct {
	rows map[string]string
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{rows: make(map[string]string)}
}

func (r *memSettingsRepo) Get(_ context.Context, key string) (string, error) {
	return r.rows[key], nil
}

func (r *memSettingsRepo) Set(_ context.Context, key, value string) error {
	r.rows[key] = value
	return nil
}

func TestRegistryBindAndLookup(t *testing.T) {
	repo := newMemBindingRepo()
	reg := NewRegistryService(repo, newMemSettingsRepo())
	ctx := context.Background()

	require.NoError(t, reg.Bind(ctx, "100", "ko"))

	lang, ok := reg.Language("100")
	assert.True(t, ok)
	assert.Equal(t, "ko", lang)
	assert.Equal(t, "ko", repo.rows["100"], "binding is written through")

	_, ok = reg.Language("200")
	assert.False(t, ok)
}

func TestRegistryRebindReplaces(t *testing.T) {
	reg := NewRegistryService(newMemBindingRepo(), newMemSettingsRepo())
	ctx := context.Background()

	require.NoError(t, reg.Bind(ctx, "100", "ko"))
	require.NoError(t, reg.Bind(ctx, "100", "en"))

	lang, _ := reg.Language("100")
	assert.Equal(t, "en", lang)
	assert.Len(t, reg.List(), 1)
}

func TestRegistryRejectsInvalidLanguage(t *testing.T) {
	repo := newMemBindingRepo()
	reg := NewRegistryService(repo, newMemSettingsRepo())

	err := reg.Bind(context.Background(), "100", "not a language!!")
	require.ErrorIs(t, err, domain.ErrInvalidLanguage)
	assert.Empty(t, reg.List())
	assert.Zero(t, repo.upserts, "invalid tags never reach storage")
}

func TestRegistryUnbind(t *testing.T) {
	repo := newMemBindingRepo()
	reg := NewRegistryService(repo, newMemSettingsRepo())
	ctx := context.Background()

	require.NoError(t, reg.Bind(ctx, "100", "ko"))

	removed, err := reg.Unbind(ctx, "100")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, reg.List())
	assert.Empty(t, repo.rows)
}

func TestRegistryUnbindMissingChannel(t *testing.T) {
	reg := NewRegistryService(newMemBindingRepo(), newMemSettingsRepo())
	require.NoError(t, reg.Bind(context.Background(), "100", "ko"))

	removed, err := reg.Unbind(context.Background(), "999")
	require.NoError(t, err, "unbinding an unknown channel is not an error")
	assert.False(t, removed)
	assert.Len(t, reg.List(), 1, "registry is left unchanged")
}

func TestRegistryLoadRestoresState(t *testing.T) {
	repo := newMemBindingRepo()
	repo.rows["100"] = "ko"
	repo.rows["200"] = "en"
	settings := newMemSettingsRepo()
	settings.rows[healthChannelKey] = "555"

	reg := NewRegistryService(repo, settings)
	require.NoError(t, reg.Load(context.Background()))

	assert.Len(t, reg.List(), 2)
	lang, ok := reg.Language("200")
	assert.True(t, ok)
	assert.Equal(t, "en", lang)
	assert.Equal(t, "555", reg.HealthChannel())
}

func TestRegistrySetHealthChannel(t *testing.T) {
	settings := newMemSettingsRepo()
	reg := NewRegistryService(newMemBindingRepo(), settings)

	assert.Empty(t, reg.HealthChannel())
	require.NoError(t, reg.SetHealthChannel(context.Background(), "777"))
	assert.Equal(t, "777", reg.HealthChannel())
	assert.Equal(t, "777", settings.rows[healthChannelKey])
}
