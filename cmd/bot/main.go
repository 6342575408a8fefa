package main

import (
	"go.uber.org/zap"

	"blackjack/internal/bot"
	"blackjack/internal/config"
	"blackjack/internal/player"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if err := cfg.RequireBotToken(); err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	b, err := bot.New(cfg, player.NewStore(), logger)
	if err != nil {
		logger.Fatal("create bot", zap.Error(err))
	}

	if err := b.Run(); err != nil {
		logger.Fatal("bot error", zap.Error(err))
	}
}
