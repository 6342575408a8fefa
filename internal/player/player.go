package player

import "sync"

// Player is the per-chat win/loss tally. Kept in memory only.
type Player struct {
	ChatID int64
	Wins   int
	Losses int
	Games  int
}

func (p *Player) AddWin() {
	p.Wins++
	p.Games++
}

func (p *Player) AddLoss() {
	p.Losses++
	p.Games++
}

// AddPush counts a game that ended level.
func (p *Player) AddPush() {
	p.Games++
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}

// Store holds player tallies keyed by chat.
type Store struct {
	mu      sync.Mutex
	players map[int64]*Player
}

func NewStore() *Store {
	return &Store{
		players: make(map[int64]*Player),
	}
}

func (s *Store) GetOrCreate(chatID int64) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[chatID]
	if !ok {
		p = &Player{ChatID: chatID}
		s.players[chatID] = p
	}
	return p
}
