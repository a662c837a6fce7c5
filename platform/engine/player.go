package engine

// OpeningBalance is every player's cash at match start.
const OpeningBalance = 1500

// Player is one seat in the match. IDs are 0..N-1 and stable for the
// whole match; bankrupt players flip Active off but keep their slot so
// ids stay valid.
type Player struct {
	ID           int
	Balance      int
	Pos          int
	Active       bool
	InJail       bool
	JailFreeCard bool
}

func newPlayer(id int) *Player {
	return &Player{ID: id, Balance: OpeningBalance, Active: true}
}
