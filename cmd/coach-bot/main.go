package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/app"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/coach"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/config"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/database"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/planstore"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	gen, err := coach.NewGeminiGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer gen.Close()

	application := app.New(cfg, gen, planstore.New(db.SQL), logger)

	bot, err := telegram.NewBot(cfg, application, logger)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}

	if err := bot.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot stopped: %v", err)
	}
}
