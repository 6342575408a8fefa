// Package deck talks to a remote deck-of-cards service over HTTP and exposes
// it as a game.CardSource.
package deck

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"blackjack/internal/game"
)

const DefaultBaseURL = "https://deckofcardsapi.com"

type deckResponse struct {
	DeckID string `json:"deck_id"`
}

type drawResponse struct {
	Cards []struct {
		Value string `json:"value"`
		Suit  string `json:"suit"`
		Code  string `json:"code"`
	} `json:"cards"`
}

// Client is a handle to one remote card pool.
type Client struct {
	baseURL  string
	http     *http.Client
	log      *zap.Logger
	deckID   string
	shuffled bool
}

// New asks the service for a fresh pool. With shuffle set the pool is created
// pre-shuffled.
func New(baseURL string, timeout time.Duration, shuffle bool, log *zap.Logger) (*Client, error) {
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		log:      log,
		shuffled: shuffle,
	}

	path := "/api/deck/new"
	if shuffle {
		path = "/api/deck/new/shuffle"
	}

	var resp deckResponse
	if err := c.get(path, &resp); err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	if resp.DeckID == "" {
		return nil, fmt.Errorf("create deck: empty deck id")
	}

	c.deckID = resp.DeckID
	c.log.Info("deck created", zap.String("deck_id", c.deckID), zap.Bool("shuffled", shuffle))
	return c, nil
}

// Shuffled reports whether the pool has been shuffled since creation.
func (c *Client) Shuffled() bool {
	return c.shuffled
}

// Shuffle re-randomizes the pool.
func (c *Client) Shuffle() error {
	var resp deckResponse
	if err := c.get("/api/deck/"+c.deckID+"/shuffle", &resp); err != nil {
		return fmt.Errorf("shuffle deck %s: %w", c.deckID, err)
	}
	c.shuffled = true
	c.log.Info("deck shuffled", zap.String("deck_id", c.deckID))
	return nil
}

// Draw removes one card from the pool and returns it.
func (c *Client) Draw() (game.Card, error) {
	var resp drawResponse
	if err := c.get("/api/deck/"+c.deckID+"/draw", &resp); err != nil {
		return game.Card{}, fmt.Errorf("draw from deck %s: %w", c.deckID, err)
	}
	if len(resp.Cards) == 0 {
		return game.Card{}, fmt.Errorf("draw from deck %s: no cards returned", c.deckID)
	}

	drawn := resp.Cards[0]
	return game.Card{Value: drawn.Value, Suit: drawn.Suit, Code: drawn.Code}, nil
}

func (c *Client) get(path string, out any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
