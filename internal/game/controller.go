package game

import "fmt"

// Move is a player decision during their turn.
type Move int

const (
	MoveHit Move = iota
	MoveStand
)

// CardSource supplies cards for one game. Implementations may be backed by
// anything that hands out unique shuffled cards; the controller only requires
// that Shuffle has happened before it starts drawing.
type CardSource interface {
	Shuffled() bool
	Shuffle() error
	Draw() (Card, error)
}

// View renders game state and collects player decisions. AskNextMove blocks
// until a valid move is obtained and never fails outward.
type View interface {
	AskNextMove(state Snapshot) Move
	NotifyWin(state Snapshot)
	NotifyLose(state Snapshot)
}

type phase int

const (
	phaseDealing phase = iota
	phaseInstantWin
	phasePlayerTurn
	phaseDealerTurn
	phaseResolved
)

// Controller runs a single game of blackjack between the player and the
// dealer, drawing from source and talking to view.
type Controller struct {
	source CardSource
	view   View

	player Hand
	dealer Hand
	phase  phase
}

func NewController(source CardSource, view View) *Controller {
	return &Controller{
		source: source,
		view:   view,
		phase:  phaseDealing,
	}
}

// Run plays the game to completion. The only errors are card source
// failures; the outcome itself is reported through the view. A push ends
// the game with no notification at all.
func (c *Controller) Run() error {
	for c.phase != phaseResolved {
		var err error
		switch c.phase {
		case phaseDealing:
			err = c.deal()
		case phaseInstantWin:
			c.checkInstantWin()
		case phasePlayerTurn:
			err = c.playerTurn()
		case phaseDealerTurn:
			err = c.dealerTurn()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns a copy of the current game state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Dealer: snapshotHand(&c.dealer),
		Player: snapshotHand(&c.player),
	}
}

func (c *Controller) deal() error {
	if !c.source.Shuffled() {
		if err := c.source.Shuffle(); err != nil {
			return fmt.Errorf("shuffle deck: %w", err)
		}
	}

	// alternate player/dealer/player/dealer
	for i := 0; i < 2; i++ {
		if err := c.drawTo(&c.player); err != nil {
			return err
		}
		if err := c.drawTo(&c.dealer); err != nil {
			return err
		}
	}

	c.phase = phaseInstantWin
	return nil
}

// checkInstantWin ends the game at once on a dealt 21. The dealer's hand is
// not consulted, so a dealer 21 loses here.
func (c *Controller) checkInstantWin() {
	if c.player.Score == 21 {
		c.view.NotifyWin(c.Snapshot())
		c.phase = phaseResolved
		return
	}
	c.phase = phasePlayerTurn
}

func (c *Controller) playerTurn() error {
	for {
		if c.player.Score > 21 {
			c.view.NotifyLose(c.Snapshot())
			c.phase = phaseResolved
			return nil
		}
		if c.player.Score == 21 {
			c.view.NotifyWin(c.Snapshot())
			c.phase = phaseResolved
			return nil
		}

		switch c.view.AskNextMove(c.Snapshot()) {
		case MoveHit:
			if err := c.drawTo(&c.player); err != nil {
				return err
			}
		case MoveStand:
			c.phase = phaseDealerTurn
			return nil
		}
	}
}

func (c *Controller) dealerTurn() error {
	for c.dealer.Score < 21 && c.dealer.Score < c.player.Score {
		if err := c.drawTo(&c.dealer); err != nil {
			return err
		}
	}

	if c.dealer.Score > 21 {
		c.view.NotifyWin(c.Snapshot())
	} else if c.dealer.Score > c.player.Score {
		c.view.NotifyLose(c.Snapshot())
	}
	// equal scores are a push: no notification

	c.phase = phaseResolved
	return nil
}

func (c *Controller) drawTo(h *Hand) error {
	card, err := c.source.Draw()
	if err != nil {
		return fmt.Errorf("draw card: %w", err)
	}
	h.AddCard(card)
	return nil
}
