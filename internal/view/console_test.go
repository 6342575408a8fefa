package view

import (
	"strings"
	"testing"

	"blackjack/internal/game"
)

func testState() game.Snapshot {
	return game.Snapshot{
		Dealer: game.HandView{
			Cards: []game.Card{{Value: "KING", Code: "KD"}, {Value: "5", Code: "5H"}},
			Score: 15,
		},
		Player: game.HandView{
			Cards: []game.Card{{Value: "ACE", Code: "AS"}, {Value: "2", Code: "2D"}},
			Score: 13,
		},
	}
}

func TestAskNextMoveMasksDealer(t *testing.T) {
	var out strings.Builder
	v := NewConsole(strings.NewReader("H\n"), &out)

	if got := v.AskNextMove(testState()); got != game.MoveHit {
		t.Fatalf("move = %v, want hit", got)
	}

	want := "\n" +
		"Dealer score   : ??\n" +
		"Dealer hand    : [KD,??]\n" +
		"\n" +
		"Your score     : 13\n" +
		"Your hand      : [AS, 2D]\n" +
		"\n" +
		"Choose your next move hit(H) or stand(S) > "
	if out.String() != want {
		t.Fatalf("output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestAskNextMoveAcceptsLowercase(t *testing.T) {
	v := NewConsole(strings.NewReader("s\n"), &strings.Builder{})
	if got := v.AskNextMove(testState()); got != game.MoveStand {
		t.Fatalf("move = %v, want stand", got)
	}
}

func TestAskNextMoveRepromptsOnInvalidInput(t *testing.T) {
	var out strings.Builder
	v := NewConsole(strings.NewReader("x\nhit\nH\n"), &out)

	if got := v.AskNextMove(testState()); got != game.MoveHit {
		t.Fatalf("move = %v, want hit", got)
	}
	if got := strings.Count(out.String(), "Invalid command!"); got != 2 {
		t.Fatalf("invalid-command messages = %d, want 2", got)
	}
	if got := strings.Count(out.String(), "Choose your next move"); got != 3 {
		t.Fatalf("prompts = %d, want 3", got)
	}
}

func TestAskNextMoveStandsOnClosedInput(t *testing.T) {
	v := NewConsole(strings.NewReader(""), &strings.Builder{})
	if got := v.AskNextMove(testState()); got != game.MoveStand {
		t.Fatalf("move = %v, want stand", got)
	}
}

func TestNotifyWinRevealsDealer(t *testing.T) {
	var out strings.Builder
	NewConsole(strings.NewReader(""), &out).NotifyWin(testState())

	got := out.String()
	if !strings.Contains(got, "Dealer score   : 15") {
		t.Errorf("dealer score still masked:\n%s", got)
	}
	if !strings.Contains(got, "Dealer hand    : [KD, 5H]") {
		t.Errorf("dealer hand still masked:\n%s", got)
	}
	if !strings.HasSuffix(got, "You won\n") {
		t.Errorf("missing verdict:\n%s", got)
	}
}

func TestNotifyLose(t *testing.T) {
	var out strings.Builder
	NewConsole(strings.NewReader(""), &out).NotifyLose(testState())

	if !strings.HasSuffix(out.String(), "You lost\n") {
		t.Errorf("missing verdict:\n%s", out.String())
	}
}
