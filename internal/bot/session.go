package bot

import (
	"sync"

	"github.com/google/uuid"

	"blackjack/internal/game"
)

// Session is one running game bound to a chat. Moves arrive from callback
// queries and are handed to the controller goroutine through the channel.
type Session struct {
	GameID string
	ChatID int64
	moves  chan game.Move
}

func NewSession(chatID int64) *Session {
	return &Session{
		GameID: uuid.NewString(),
		ChatID: chatID,
		moves:  make(chan game.Move),
	}
}

// Sessions tracks the active game per chat.
type Sessions struct {
	games map[int64]*Session
	mu    sync.RWMutex
}

func NewSessions() *Sessions {
	return &Sessions{
		games: make(map[int64]*Session),
	}
}

func (s *Sessions) Get(chatID int64) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[chatID]
}

func (s *Sessions) Set(chatID int64, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[chatID] = sess
}

func (s *Sessions) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, chatID)
}
