package game

// Hand holds the cards of one party in draw order plus the score of the
// last recomputation. The zero value is an empty hand scoring 0.
type Hand struct {
	Cards []Card
	Score int
}

// AddCard appends card and recomputes the score. Aces count 11 first; while
// the total is over 21 they drop to 1 one by one in draw order, stopping as
// soon as the total fits.
func (h *Hand) AddCard(card Card) {
	h.Cards = append(h.Cards, card)

	score := 0
	hasAces := false
	for _, c := range h.Cards {
		score += rankValues[c.Value]
		if c.Value == RankAce {
			hasAces = true
		}
	}

	if hasAces && score > 21 {
		for _, c := range h.Cards {
			if c.Value == RankAce {
				score -= 10
			}
			if score <= 21 {
				break
			}
		}
	}

	h.Score = score
}
