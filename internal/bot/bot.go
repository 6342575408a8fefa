// Package bot serves blackjack games over Telegram, one active game per chat.
package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"blackjack/internal/config"
	"blackjack/internal/player"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	log     *zap.Logger
}

func New(cfg *config.Config, players *player.Store, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, players, log),
		log:     log,
	}, nil
}

func (b *Bot) Run() error {
	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			go b.handler.HandleCallback(update.CallbackQuery)
			continue
		}

		if update.Message != nil {
			go b.handler.HandleMessage(update.Message)
		}
	}

	return nil
}
