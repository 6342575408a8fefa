package game

import "testing"

func card(value string) Card {
	return Card{Value: value, Suit: "SPADES", Code: value}
}

func handOf(values ...string) *Hand {
	h := &Hand{}
	for _, v := range values {
		h.AddCard(card(v))
	}
	return h
}

func TestAddCard_NonAceSums(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   int
	}{
		{"single numeric", []string{"7"}, 7},
		{"numerics", []string{"2", "9", "10"}, 21},
		{"faces count ten", []string{"JACK", "QUEEN", "KING"}, 30},
		{"five fives", []string{"5", "5", "5", "5", "5"}, 25},
		{"empty hand", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handOf(tt.values...).Score; got != tt.want {
				t.Fatalf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddCard_SingleAce(t *testing.T) {
	// ace stays 11 while the total fits
	if got := handOf("5", "5", "ACE").Score; got != 21 {
		t.Fatalf("5+5+A = %d, want 21", got)
	}

	// ace drops to 1 when 11 would bust
	if got := handOf("10", "5", "ACE").Score; got != 16 {
		t.Fatalf("10+5+A = %d, want 16", got)
	}
}

func TestAddCard_TwoAcesScoreTwelve(t *testing.T) {
	if got := handOf("ACE", "ACE").Score; got != 12 {
		t.Fatalf("A+A = %d, want 12", got)
	}
}

func TestAddCard_TenAceIsTwentyOne(t *testing.T) {
	if got := handOf("10", "ACE").Score; got != 21 {
		t.Fatalf("10+A = %d, want 21", got)
	}
}

func TestAddCard_ReductionStopsOnceTotalFits(t *testing.T) {
	// A+A+K starts at 32; both aces drop in draw order, stopping at 12
	if got := handOf("ACE", "ACE", "KING").Score; got != 12 {
		t.Fatalf("A+A+K = %d, want 12", got)
	}

	// A+9+A: second ace alone brings 31 down to 21, first already reduced
	if got := handOf("ACE", "9", "ACE").Score; got != 21 {
		t.Fatalf("A+9+A = %d, want 21", got)
	}
}

func TestAddCard_ScoreRecomputedOnEveryAdd(t *testing.T) {
	h := &Hand{}
	h.AddCard(card("ACE"))
	if h.Score != 11 {
		t.Fatalf("after A: score = %d, want 11", h.Score)
	}
	h.AddCard(card("KING"))
	if h.Score != 21 {
		t.Fatalf("after A+K: score = %d, want 21", h.Score)
	}
	h.AddCard(card("5"))
	if h.Score != 16 {
		t.Fatalf("after A+K+5: score = %d, want 16", h.Score)
	}
}

func TestAddCard_ReplaySameOrderSameScore(t *testing.T) {
	values := []string{"ACE", "4", "ACE", "KING", "2"}

	first := handOf(values...).Score
	for i := 0; i < 10; i++ {
		if got := handOf(values...).Score; got != first {
			t.Fatalf("replay %d: score = %d, want %d", i, got, first)
		}
	}
}
