package bot

import (
	"fmt"
	"strings"

	"blackjack/internal/game"
)

type outcome int

const (
	outcomeNone outcome = iota
	outcomeWin
	outcomeLose
)

// chatView drives one chat's game. It implements game.View: prompts become
// inline-keyboard messages and the answer is whatever callback the session
// delivers next.
type chatView struct {
	h       *Handler
	sess    *Session
	outcome outcome
}

func (v *chatView) AskNextMove(state game.Snapshot) game.Move {
	v.h.sendWithKeyboard(v.sess.ChatID, formatBoard(state, false), GameKeyboard())
	return <-v.sess.moves
}

func (v *chatView) NotifyWin(state game.Snapshot) {
	v.outcome = outcomeWin
	v.h.send(v.sess.ChatID, formatBoard(state, true)+"\n\n🎉 You won")
}

func (v *chatView) NotifyLose(state game.Snapshot) {
	v.outcome = outcomeLose
	v.h.send(v.sess.ChatID, formatBoard(state, true)+"\n\n💀 You lost")
}

func formatBoard(state game.Snapshot, final bool) string {
	dealer := maskedCodes(state.Dealer.Cards)
	if final {
		dealer = fmt.Sprintf("%s (%d)", handCodes(state.Dealer.Cards), state.Dealer.Score)
	}
	return fmt.Sprintf("🃏 Dealer: %s\n🎴 You: %s (%d)",
		dealer, handCodes(state.Player.Cards), state.Player.Score)
}

func handCodes(cards []game.Card) string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code
	}
	return "[" + strings.Join(codes, ", ") + "]"
}

// maskedCodes hides the dealer's last card while the game is running.
func maskedCodes(cards []game.Card) string {
	codes := make([]string, 0, len(cards))
	for i := 0; i+1 < len(cards); i++ {
		codes = append(codes, cards[i].Code)
	}
	codes = append(codes, "??")
	return "[" + strings.Join(codes, ",") + "]"
}
