package main

import (
	"os"

	"go.uber.org/zap"

	"blackjack/internal/config"
	"blackjack/internal/deck"
	"blackjack/internal/game"
	"blackjack/internal/view"
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

	source, err := deck.New(cfg.DeckAPIURL, cfg.HTTPTimeout, false, logger)
	if err != nil {
		logger.Fatal("create deck", zap.Error(err))
	}

	console := view.NewConsole(os.Stdin, os.Stdout)
	if err := game.NewController(source, console).Run(); err != nil {
		logger.Fatal("game aborted", zap.Error(err))
	}
}
