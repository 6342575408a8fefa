// Package view implements the text console front-end.
package view

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blackjack/internal/game"
)

// Console prompts on in and prints game state to out. While the game is
// running the dealer's score and last card are masked as "??".
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// AskNextMove shows the masked state and prompts until the player answers
// hit or stand. Input that ends before a valid choice counts as stand.
func (v *Console) AskNextMove(state game.Snapshot) game.Move {
	v.render(state, false)
	for {
		fmt.Fprint(v.out, "Choose your next move hit(H) or stand(S) > ")
		if !v.in.Scan() {
			return game.MoveStand
		}
		switch strings.ToUpper(strings.TrimSpace(v.in.Text())) {
		case "H":
			return game.MoveHit
		case "S":
			return game.MoveStand
		}
		fmt.Fprintln(v.out, "Invalid command!")
	}
}

func (v *Console) NotifyWin(state game.Snapshot) {
	v.render(state, true)
	fmt.Fprintln(v.out, "You won")
}

func (v *Console) NotifyLose(state game.Snapshot) {
	v.render(state, true)
	fmt.Fprintln(v.out, "You lost")
}

func (v *Console) render(state game.Snapshot, final bool) {
	dealerScore := "??"
	dealerHand := maskedHand(state.Dealer.Cards)
	if final {
		dealerScore = strconv.Itoa(state.Dealer.Score)
		dealerHand = fullHand(state.Dealer.Cards)
	}

	fmt.Fprintf(v.out, "\n%-15s: %s\n%-15s: %s\n\n%-15s: %d\n%-15s: %s\n\n",
		"Dealer score", dealerScore,
		"Dealer hand", dealerHand,
		"Your score", state.Player.Score,
		"Your hand", fullHand(state.Player.Cards))
}

func fullHand(cards []game.Card) string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code
	}
	return "[" + strings.Join(codes, ", ") + "]"
}

// maskedHand hides the dealer's last drawn card.
func maskedHand(cards []game.Card) string {
	codes := make([]string, 0, len(cards))
	for i := 0; i+1 < len(cards); i++ {
		codes = append(codes, cards[i].Code)
	}
	codes = append(codes, "??")
	return "[" + strings.Join(codes, ",") + "]"
}
