package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"translatorbot/internal/domain"
	"translatorbot/internal/domain/entities"
	"translatorbot/internal/ports/output"
)

const healthChannelKey = "health_channel"

// RegistryService owns the channel→language bindings. Reads are served from
// memory; every mutation is written through to the repository so a restart
// recovers the same state.
type RegistryService struct {
	mu            sync.RWMutex
	bindings      map[string]string
	healthChannel string

	repo     output.BindingRepository
	settings output.SettingsRepository
}

func NewRegistryService(repo output.BindingRepository, settings output.SettingsRepository) *RegistryService {
	return &RegistryService{
		bindings: make(map[string]string),
		repo:     repo,
		settings: settings,
	}
}

// Load restores bindings and the health channel from storage. Called once at
// startup, before the bot connects.
func (s *RegistryService) Load(ctx context.Context) error {
	bindings, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load bindings: %w", err)
	}
	health, err := s.settings.Get(ctx, healthChannelKey)
	if err != nil {
		return fmt.Errorf("load health channel: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = make(map[string]string, len(bindings))
	for _, b := range bindings {
		s.bindings[b.ChannelID] = b.Language
	}
	s.healthChannel = health
	return nil
}

// Bind registers the channel for the given language, replacing any previous
// binding. The language code must be a parsable BCP 47 tag (e.g. "ko", "en",
// "zh-CN"); it is stored as entered since the translation provider expects it
// verbatim.
func (s *RegistryService) Bind(ctx context.Context, channelID, lang string) error {
	lang = strings.TrimSpace(lang)
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLanguage, lang)
	}

	if err := s.repo.Upsert(ctx, entities.ChannelBinding{ChannelID: channelID, Language: lang}); err != nil {
		return fmt.Errorf("persist binding: %w", err)
	}

	s.mu.Lock()
	s.bindings[channelID] = lang
	s.mu.Unlock()
	return nil
}

// Unbind removes the channel's binding. The bool reports whether a binding
// existed; removing an unbound channel is not an error.
func (s *RegistryService) Unbind(ctx context.Context, channelID string) (bool, error) {
	s.mu.RLock()
	_, exists := s.bindings[channelID]
	s.mu.RUnlock()
	if !exists {
		return false, nil
	}

	if err := s.repo.Delete(ctx, channelID); err != nil {
		return false, fmt.Errorf("delete binding: %w", err)
	}

	s.mu.Lock()
	delete(s.bindings, channelID)
	s.mu.Unlock()
	return true, nil
}

// List returns a snapshot of the current bindings in no particular order.
func (s *RegistryService) List() []entities.ChannelBinding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.ChannelBinding, 0, len(s.bindings))
	for id, lang := range s.bindings {
		out = append(out, entities.ChannelBinding{ChannelID: id, Language: lang})
	}
	return out
}

// Language looks up the language bound to the channel.
func (s *RegistryService) Language(channelID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lang, ok := s.bindings[channelID]
	return lang, ok
}

// SetHealthChannel designates the channel that receives periodic liveness
// notices.
func (s *RegistryService) SetHealthChannel(ctx context.Context, channelID string) error {
	if err := s.settings.Set(ctx, healthChannelKey, channelID); err != nil {
		return fmt.Errorf("persist health channel: %w", err)
	}
	s.mu.Lock()
	s.healthChannel = channelID
	s.mu.Unlock()
	return nil
}

// HealthChannel returns the configured health channel, or "" when unset.
func (s *RegistryService) HealthChannel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthChannel
}
