package game

// HandView is a copy of one hand taken for display.
type HandView struct {
	Cards []Card
	Score int
}

// Snapshot pairs copies of both hands. Views receive a fresh snapshot on
// every call, so nothing they hold aliases the live game state.
type Snapshot struct {
	Dealer HandView
	Player HandView
}

func snapshotHand(h *Hand) HandView {
	cards := make([]Card, len(h.Cards))
	copy(cards, h.Cards)
	return HandView{Cards: cards, Score: h.Score}
}
