// Package telegram runs the coach as a long-polling Telegram bot. A plain
// message is treated as a fitness goal; the generated plan is persisted and
// summarized back to the chat.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/app"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/coach"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/config"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/render"
)

const startMessage = `Send me your running goal (e.g. "run a 10k in 8 weeks") and I will build a training and nutrition plan.

Commands:
/list - show stored plans
/start - this message`

// Bot wraps the Telegram API and the coach application.
type Bot struct {
	api         *tgbotapi.BotAPI
	app         *app.App
	allowUserID int64
	log         zerolog.Logger
}

// NewBot initializes the Telegram bot.
func NewBot(cfg *config.Config, application *app.App, logger zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	logger.Info().Str("account", api.Self.UserName).Msg("authorized on telegram")

	return &Bot{
		api:         api,
		app:         application,
		allowUserID: cfg.TelegramAllowUserID,
		log:         logger,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			if b.allowUserID != 0 && update.Message.From.ID != b.allowUserID {
				b.log.Warn().
					Int64("user_id", update.Message.From.ID).
					Str("username", update.Message.From.UserName).
					Msg("unauthorized access attempt")
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Text {
	case "/start", "/help":
		b.reply(msg.Chat.ID, startMessage)
	case "/list":
		b.handleList(ctx, msg.Chat.ID)
	default:
		b.handleGoal(ctx, msg.Chat.ID, msg.Text)
	}
}

func (b *Bot) handleList(ctx context.Context, chatID int64) {
	summaries, err := b.app.ListPlans(ctx)
	if err != nil {
		b.log.Error().Err(err).Msg("failed to list plans")
		b.reply(chatID, "Sorry, I could not read the stored plans.")
		return
	}
	if len(summaries) == 0 {
		b.reply(chatID, "No plans stored yet. Send me a goal to create one.")
		return
	}

	text := "Stored plans:\n"
	for _, s := range summaries {
		text += fmt.Sprintf("#%d  %s  (%s)\n", s.ID, s.Motivation, s.CreatedAt.Format("2006-01-02"))
	}
	b.reply(chatID, text)
}

func (b *Bot) handleGoal(ctx context.Context, chatID int64, goal string) {
	if err := coach.ValidateGoal(goal); err != nil {
		b.reply(chatID, err.Error())
		return
	}

	b.reply(chatID, "Generating your training plan, this may take a moment...")

	result, err := b.app.GeneratePlan(ctx, goal)
	if err != nil {
		b.log.Error().Err(err).Msg("plan generation failed")
		b.reply(chatID, fmt.Sprintf("Plan generation failed: %v", err))
		return
	}

	text := render.Summary(result.Plan)
	if result.PlanID > 0 {
		text += fmt.Sprintf("\nSaved as plan #%d.", result.PlanID)
	}
	b.reply(chatID, text)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send telegram message")
	}
}
