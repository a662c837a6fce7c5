package engine

import "sort"

// Standing is one row of the final (or provisional) ranking.
type Standing struct {
	Player  int
	Balance int
	// Capital is the balance plus the liquidation value of every held
	// asset, i.e. what the player could raise by selling out.
	Capital int
}

// Ranking sorts all seats by capital, then balance, then id. The
// first entry is the winner once the match is over.
func (g *Game) Ranking() []Standing {
	out := make([]Standing, len(g.players))
	for i, p := range g.players {
		capital := p.Balance
		for _, a := range g.board.OwnedBy(p.ID) {
			capital += a.AggregateValue() * LiquidationPct / 100
		}
		out[i] = Standing{Player: p.ID, Balance: p.Balance, Capital: capital}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Capital != out[j].Capital {
			return out[i].Capital > out[j].Capital
		}
		if out[i].Balance != out[j].Balance {
			return out[i].Balance > out[j].Balance
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// Winner returns the top-ranked player id.
func (g *Game) Winner() int {
	return g.Ranking()[0].Player
}
