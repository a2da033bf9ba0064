package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"translatorbot/internal/adapters/discord"
	"translatorbot/internal/application"
	"translatorbot/internal/config"
	"translatorbot/internal/infrastructure/database"
	"translatorbot/internal/infrastructure/fetch"
	"translatorbot/internal/infrastructure/googletrans"
	"translatorbot/internal/infrastructure/i18n"
	"translatorbot/internal/infrastructure/probe"
	"translatorbot/internal/infrastructure/redeploy"
)

const restartInterval = 30 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database init error: %v", err)
	}
	defer pool.Close()

	// Hosting platforms kill the process unless something answers on PORT.
	go func() {
		if err := probe.Serve(cfg.Port); err != nil {
			log.Printf("⚠️ Liveness probe stopped: %v", err)
		}
	}()

	if cfg.RedeployURL != "" {
		supervisor := application.NewRestartSupervisor(redeploy.NewHTTPTrigger(cfg.RedeployURL), restartInterval)
		go supervisor.Run(ctx)
	}

	bot, err := discord.NewBot(cfg,
		database.NewBindingRepository(pool),
		database.NewSettingsRepository(pool),
		googletrans.NewClient(cfg.GoogleAPIKey),
		fetch.NewHTTPFetcher(),
		i18n.NewTranslator(cfg.Locale),
	)
	if err != nil {
		log.Fatalf("❌ Bot init error: %v", err)
	}

	if err := bot.Start(ctx); err != nil {
		log.Printf("❌ Bot error: %v", err)
		os.Exit(1)
	}
}
