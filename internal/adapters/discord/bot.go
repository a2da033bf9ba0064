package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"translatorbot/internal/application"
	"translatorbot/internal/config"
	"translatorbot/internal/ports/input"
	"translatorbot/internal/ports/output"
)

const (
	// One outbound send per second keeps us under Discord's channel rate limits.
	sendInterval = time.Second

	healthInterval = 10 * time.Minute
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	handler    *Handler
	relay      input.RelayUseCase
	registry   *application.RegistryService
	dispatcher *application.Dispatcher
	health     *application.HealthMonitor
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	bindingRepo output.BindingRepository,
	settingsRepo output.SettingsRepository,
	provider output.TranslationProvider,
	fetcher output.AttachmentFetcher,
	t output.T,
) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	registry := application.NewRegistryService(bindingRepo, settingsRepo)
	ledger := application.NewUsageLedger(cfg.DailyCharLimit)
	gateway := application.NewTranslateGateway(provider, ledger)
	dispatcher := application.NewDispatcher(NewSender(s), sendInterval)
	relay := application.NewRelayService(registry, gateway, dispatcher, fetcher, t)
	health := application.NewHealthMonitor(registry, dispatcher, t, healthInterval, dispatcher.ReadySignal())

	bot := &Bot{
		session:    s,
		config:     cfg,
		handler:    NewHandler(registry, ledger, t, cfg.Locale),
		relay:      relay,
		registry:   registry,
		dispatcher: dispatcher,
		health:     health,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleMessage)
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("✅ Logged in as %s", r.User.Username)
	// Queued deliveries start draining only once the gateway is up.
	b.dispatcher.Ready()
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case commandBind:
		b.handler.HandleBind(s, i)
	case commandUnbind:
		b.handler.HandleUnbind(s, i)
	case commandList:
		b.handler.HandleList(s, i)
	case commandHealthChannel:
		b.handler.HandleHealthChannel(s, i)
	case commandUsage:
		b.handler.HandleUsage(s, i)
	}
}

// Start runs the bot until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.registry.Load(ctx); err != nil {
		return fmt.Errorf("restore registry: %w", err)
	}

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Failed to register command %s: %v", cmd.Name, err)
		}
	}

	go b.dispatcher.Run(ctx)
	go b.health.Run(ctx)

	log.Println("🤖 Bot online! Press CTRL+C to quit.")
	<-ctx.Done()
	return nil
}
