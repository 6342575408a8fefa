package game

// Ranks as the deck service reports them.
const (
	RankJack  = "JACK"
	RankQueen = "QUEEN"
	RankKing  = "KING"
	RankAce   = "ACE"
)

var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	RankJack: 10, RankQueen: 10, RankKing: 10, RankAce: 11,
}

// Card is one playing card as drawn from a card source.
type Card struct {
	Value string
	Suit  string
	Code  string
}

func (c Card) String() string {
	return c.Code
}
