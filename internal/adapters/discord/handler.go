package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"translatorbot/internal/domain"
	"translatorbot/internal/ports/input"
	"translatorbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	registry input.RegistryUseCase
	usage    input.UsageUseCase
	t        output.T
	locale   string
}

// NewHandler creates a Handler. locale is the language used for operator
// replies.
func NewHandler(registry input.RegistryUseCase, usage input.UsageUseCase, t output.T, locale string) *Handler {
	return &Handler{
		registry: registry,
		usage:    usage,
		t:        t,
		locale:   locale,
	}
}

func (h *Handler) HandleBind(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		return
	}
	lang := strings.TrimSpace(opts[0].StringValue())

	err := h.registry.Bind(context.Background(), i.ChannelID, lang)
	switch {
	case errors.Is(err, domain.ErrInvalidLanguage):
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "bind_invalid_language", map[string]any{"Language": lang}))
	case err != nil:
		log.Printf("❌ Bind failed (channel=%s): %v", i.ChannelID, err)
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "command_failed", nil))
	default:
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "bind_success", map[string]any{"Language": lang}))
	}
}

func (h *Handler) HandleUnbind(s *discordgo.Session, i *discordgo.InteractionCreate) {
	removed, err := h.registry.Unbind(context.Background(), i.ChannelID)
	switch {
	case err != nil:
		log.Printf("❌ Unbind failed (channel=%s): %v", i.ChannelID, err)
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "command_failed", nil))
	case !removed:
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "unbind_missing", nil))
	default:
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "unbind_success", nil))
	}
}

func (h *Handler) HandleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	bindings := h.registry.List()
	if len(bindings) == 0 {
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "list_empty", nil))
		return
	}

	var sb strings.Builder
	sb.WriteString(h.t.T(h.locale, "list_header", nil))
	for _, b := range bindings {
		fmt.Fprintf(&sb, "\n- %s (%s)", channelName(s, b.ChannelID), b.Language)
	}
	respondEphemeral(s, i.Interaction, sb.String())
}

func (h *Handler) HandleHealthChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.registry.SetHealthChannel(context.Background(), i.ChannelID); err != nil {
		log.Printf("❌ Set health channel failed (channel=%s): %v", i.ChannelID, err)
		respondEphemeral(s, i.Interaction, h.t.T(h.locale, "command_failed", nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.t.T(h.locale, "health_set", nil))
}

func (h *Handler) HandleUsage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	date, used, quota := h.usage.Usage()
	respondEphemeral(s, i.Interaction, h.t.T(h.locale, "usage_report", map[string]any{
		"Date":  date,
		"Used":  used,
		"Quota": quota,
	}))
}

// channelName resolves the channel's display name, preferring the local state
// cache over an API round trip.
func channelName(s *discordgo.Session, channelID string) string {
	if ch, err := s.State.Channel(channelID); err == nil && ch.Name != "" {
		return ch.Name
	}
	if ch, err := s.Channel(channelID); err == nil && ch.Name != "" {
		return ch.Name
	}
	return "Unknown Channel ID " + channelID
}
