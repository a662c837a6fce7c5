package engine

import "github.com/DedS3t/monopoly-engine/platform/board"

// CurrentPlayer returns the id whose turn it is.
func (g *Game) CurrentPlayer() int { return g.tracker.Current() }

// NumPlayers includes bankrupt seats; ids stay stable for the match.
func (g *Game) NumPlayers() int { return len(g.players) }

// Player returns a copy of a player's state.
func (g *Game) Player(id int) (Player, error) {
	if id < 0 || id >= len(g.players) {
		return Player{}, ErrNoSuchPlayer
	}
	return *g.players[id], nil
}

// Players returns copies of every seat in id order.
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	for i, p := range g.players {
		out[i] = *p
	}
	return out
}

// Owner returns the owner id of the asset at pos, board.NoOwner when
// unowned, and an error when the position is off the board or the
// cell is not ownable.
func (g *Game) Owner(pos int) (int, error) {
	if pos < 0 || pos >= g.board.Size() {
		return board.NoOwner, ErrNoSuchCell
	}
	asset, ok := g.board.Asset(pos)
	if !ok {
		return board.NoOwner, ErrNotOwnable
	}
	return asset.Owner(), nil
}

// HeldCards lists the chance card ids a player is sitting on.
func (g *Game) HeldCards(id int) []int { return g.deck.Held(id) }

// TakeDrawnCard drains the one-shot "last drawn chance card" buffer
// for the notification layer. -1 when nothing is buffered.
func (g *Game) TakeDrawnCard() int { return g.deck.TakeLastDrawn() }

// LastRoll returns the last registered dice pair, -1/-1 before the
// first roll.
func (g *Game) LastRoll() (int, int) { return g.tracker.LastRoll() }

// Doubles returns the current consecutive-double count.
func (g *Game) Doubles() int { return g.tracker.Doubles() }

// Rolled reports whether the current player already spent their roll.
func (g *Game) Rolled() bool { return g.tracker.Rolled() }

// Finished reports whether the match is over.
func (g *Game) Finished() bool { return g.finished }

// BankBalance returns the bank pool.
func (g *Game) BankBalance() int { return g.bank.Balance() }

// Board exposes the board for read-only cell and asset lookups.
func (g *Game) Board() *board.Board { return g.board }
