package player

import "testing"

func TestStoreGetOrCreateReturnsSamePlayer(t *testing.T) {
	s := NewStore()

	p := s.GetOrCreate(42)
	p.AddWin()

	if again := s.GetOrCreate(42); again.Wins != 1 {
		t.Fatalf("wins = %d, want 1", again.Wins)
	}
	if other := s.GetOrCreate(7); other.Wins != 0 {
		t.Fatalf("new chat wins = %d, want 0", other.Wins)
	}
}

func TestWinRate(t *testing.T) {
	p := &Player{}
	if got := p.WinRate(); got != 0 {
		t.Fatalf("win rate with no games = %v, want 0", got)
	}

	p.AddWin()
	p.AddLoss()
	p.AddWin()
	p.AddPush()

	if p.Games != 4 {
		t.Fatalf("games = %d, want 4", p.Games)
	}
	if got := p.WinRate(); got != 50 {
		t.Fatalf("win rate = %v, want 50", got)
	}
}
