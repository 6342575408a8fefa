package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"blackjack/internal/config"
	"blackjack/internal/deck"
	"blackjack/internal/game"
	"blackjack/internal/player"
)

type Handler struct {
	bot      *tgbotapi.BotAPI
	cfg      *config.Config
	players  *player.Store
	sessions *Sessions
	log      *zap.Logger
}

func NewHandler(bot *tgbotapi.BotAPI, cfg *config.Config, players *player.Store, log *zap.Logger) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		players:  players,
		sessions: NewSessions(),
		log:      log,
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.Warn("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Warn("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) answerCallback(id, text string) {
	h.bot.Request(tgbotapi.NewCallback(id, text))
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID, "🎰 Welcome to Blackjack!\n\n"+
		"/play — start a game\n"+
		"/stats — your results\n"+
		"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Goal: reach 21, or beat the dealer without going over\n\n"+
			"📊 Card values:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — stop and let the dealer play")
}

func (h *Handler) HandleStats(chatID int64) {
	p := h.players.GetOrCreate(chatID)
	h.send(chatID, fmt.Sprintf(
		"📊 Your results:\n"+
			"🎮 Games: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d",
		p.Games, p.Wins, p.WinRate(), p.Losses))
}

func (h *Handler) HandlePlay(chatID int64) {
	if h.sessions.Get(chatID) != nil {
		h.send(chatID, "⏳ Finish the current game first")
		return
	}

	sess := NewSession(chatID)
	h.sessions.Set(chatID, sess)
	go h.runGame(sess)
}

// runGame owns one game from deal to cleanup.
func (h *Handler) runGame(sess *Session) {
	defer h.sessions.Delete(sess.ChatID)

	log := h.log.With(zap.String("game_id", sess.GameID), zap.Int64("chat_id", sess.ChatID))

	source, err := deck.New(h.cfg.DeckAPIURL, h.cfg.HTTPTimeout, true, log)
	if err != nil {
		log.Error("create deck", zap.Error(err))
		h.send(sess.ChatID, "❌ Card service is unavailable, try again later")
		return
	}

	v := &chatView{h: h, sess: sess}
	ctrl := game.NewController(source, v)
	if err := ctrl.Run(); err != nil {
		log.Error("game aborted", zap.Error(err))
		h.send(sess.ChatID, "❌ Card service failed, the game was cancelled")
		return
	}

	p := h.players.GetOrCreate(sess.ChatID)
	switch v.outcome {
	case outcomeWin:
		p.AddWin()
	case outcomeLose:
		p.AddLoss()
	default:
		// level scores end the game without a verdict; still reveal the board
		p.AddPush()
		h.send(sess.ChatID, formatBoard(ctrl.Snapshot(), true))
	}

	h.sendWithKeyboard(sess.ChatID,
		fmt.Sprintf("🎮 Games: %d | ✅ %d | ❌ %d", p.Games, p.Wins, p.Losses),
		EndGameKeyboard())
	log.Info("game finished")
}

// ============== UPDATES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	switch strings.ToLower(parts[0]) {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	case "/stats":
		h.HandleStats(chatID)
	}
}

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackHit, CallbackStand:
		sess := h.sessions.Get(chatID)
		if sess == nil {
			h.answerCallback(callback.ID, "No active game")
			return
		}
		move := game.MoveHit
		if callback.Data == CallbackStand {
			move = game.MoveStand
		}
		select {
		case sess.moves <- move:
			h.answerCallback(callback.ID, "")
		default:
			h.answerCallback(callback.ID, "Not your turn")
		}
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID)
	case CallbackStats:
		h.answerCallback(callback.ID, "")
		h.HandleStats(chatID)
	}
}
