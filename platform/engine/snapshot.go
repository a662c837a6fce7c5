package engine

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/platform/board"
)

// PlayerState is one seat in a snapshot.
type PlayerState struct {
	ID           int
	Balance      int
	Pos          int
	Active       bool
	InJail       bool
	JailFreeCard bool
	Cards        []int
}

// AssetState is the mutable part of one ownable cell. Owner is
// board.NoOwner when the bank holds it; Houses/Hotel only apply to
// properties.
type AssetState struct {
	Pos    int
	Owner  int
	Houses int
	Hotel  bool
}

// Snapshot is a complete, self-contained copy of engine state. Export
// followed by Import on a fresh engine reproduces identical behavior
// (given an identically seeded roller).
type Snapshot struct {
	Players []PlayerState
	Assets  []AssetState

	Order       []int
	Turn        int
	Doubles     int
	LastD1      int
	LastD2      int
	Rolled      bool
	MustJail    bool
	MovePending bool

	LandingPos int
	Bought     bool
	Built      bool

	Bank        int
	DeckSize    int
	DeckPointer int
	LastDrawn   int

	Finished bool
}

// Export captures the full engine state as an immutable value.
func (g *Game) Export() Snapshot {
	snap := Snapshot{
		Players:     make([]PlayerState, len(g.players)),
		Order:       g.tracker.Order(),
		Turn:        g.tracker.index(),
		Doubles:     g.tracker.Doubles(),
		Rolled:      g.tracker.Rolled(),
		MustJail:    g.tracker.MustJail(),
		MovePending: g.pending,
		LandingPos:  g.landing.pos,
		Bought:      g.landing.bought,
		Built:       g.landing.built,
		Bank:        g.bank.Balance(),
		DeckSize:    g.deck.Size(),
		DeckPointer: g.deck.Pointer(),
		LastDrawn:   g.deck.peekLastDrawn(),
		Finished:    g.finished,
	}
	snap.LastD1, snap.LastD2 = g.tracker.LastRoll()

	for i, p := range g.players {
		snap.Players[i] = PlayerState{
			ID:           p.ID,
			Balance:      p.Balance,
			Pos:          p.Pos,
			Active:       p.Active,
			InJail:       p.InJail,
			JailFreeCard: p.JailFreeCard,
			Cards:        g.deck.Held(p.ID),
		}
	}
	for _, a := range g.board.Assets() {
		st := AssetState{Pos: a.Pos(), Owner: a.Owner()}
		if prop, ok := a.(*board.Property); ok {
			st.Houses = prop.Houses()
			st.Hotel = prop.Hotel()
		}
		snap.Assets = append(snap.Assets, st)
	}
	return snap
}

// Import replaces the engine's state with the snapshot's. The volatile
// auto-chain guard resets to its safe default; everything else is
// restored verbatim so subsequent behavior is identical. A snapshot
// that is internally inconsistent is rejected without touching state.
func (g *Game) Import(snap Snapshot) error {
	if err := g.validateSnapshot(snap); err != nil {
		return err
	}

	for i, ps := range snap.Players {
		p := g.players[i]
		p.Balance = ps.Balance
		p.Pos = ps.Pos
		p.Active = ps.Active
		p.InJail = ps.InJail
		p.JailFreeCard = ps.JailFreeCard
		g.deck.setHeld(p.ID, ps.Cards)
	}

	for _, a := range g.board.Assets() {
		a.Reset()
	}
	for _, st := range snap.Assets {
		asset, _ := g.board.Asset(st.Pos)
		asset.SetOwner(st.Owner)
		if prop, ok := asset.(*board.Property); ok {
			prop.SetBuildings(st.Houses, st.Hotel)
		}
	}

	if err := g.tracker.SetOrder(snap.Order); err != nil {
		return err
	}
	g.tracker.restore(snap.Turn, snap.Doubles, snap.LastD1, snap.LastD2, snap.Rolled, snap.MustJail)
	g.pending = snap.MovePending
	g.landing = landing{pos: snap.LandingPos, bought: snap.Bought, built: snap.Built}
	g.bank.setBalance(snap.Bank)
	g.deck.setPointer(snap.DeckPointer)
	g.deck.setLastDrawn(snap.LastDrawn)
	g.autoRoll = false
	g.chaining = false
	g.finished = snap.Finished
	return nil
}

func (g *Game) validateSnapshot(snap Snapshot) error {
	if len(snap.Players) != len(g.players) {
		return fmt.Errorf("%w: snapshot has %d players, engine has %d", ErrBadSnapshot, len(snap.Players), len(g.players))
	}
	if len(snap.Order) != len(snap.Players) {
		return fmt.Errorf("%w: turn order size %d for %d players", ErrBadSnapshot, len(snap.Order), len(snap.Players))
	}
	if snap.Turn < 0 || snap.Turn >= len(snap.Order) {
		return fmt.Errorf("%w: turn index %d out of range", ErrBadSnapshot, snap.Turn)
	}
	seen := make(map[int]bool, len(snap.Order))
	for _, id := range snap.Order {
		if id < 0 || id >= len(snap.Players) || seen[id] {
			return fmt.Errorf("%w: bad turn order entry %d", ErrBadSnapshot, id)
		}
		seen[id] = true
	}
	if snap.DeckSize != g.deck.Size() {
		return fmt.Errorf("%w: deck size %d, catalog has %d", ErrBadSnapshot, snap.DeckSize, g.deck.Size())
	}
	if snap.DeckPointer < 0 || snap.DeckPointer >= g.deck.Size() {
		return fmt.Errorf("%w: deck pointer %d out of range", ErrBadSnapshot, snap.DeckPointer)
	}

	active := 0
	for i, ps := range snap.Players {
		if ps.ID != i {
			return fmt.Errorf("%w: player id %d at slot %d", ErrBadSnapshot, ps.ID, i)
		}
		if ps.Pos < 0 || ps.Pos >= g.board.Size() {
			return fmt.Errorf("%w: player %d at position %d", ErrBadSnapshot, ps.ID, ps.Pos)
		}
		if ps.Active {
			active++
		}
		for _, id := range ps.Cards {
			card, ok := g.deck.Card(id)
			if !ok || card.Effect != JailFree {
				return fmt.Errorf("%w: player %d holds card %d", ErrBadSnapshot, ps.ID, id)
			}
		}
	}
	if !snap.Finished && active == 0 {
		return fmt.Errorf("%w: no active player in a running match", ErrBadSnapshot)
	}
	if !snap.Finished {
		if cur := snap.Order[snap.Turn]; !snap.Players[cur].Active {
			return fmt.Errorf("%w: turn pointer on bankrupt player %d", ErrBadSnapshot, cur)
		}
	}

	for _, st := range snap.Assets {
		asset, ok := g.board.Asset(st.Pos)
		if !ok {
			return fmt.Errorf("%w: no asset at position %d", ErrBadSnapshot, st.Pos)
		}
		if st.Owner != board.NoOwner && (st.Owner < 0 || st.Owner >= len(snap.Players)) {
			return fmt.Errorf("%w: asset %d owned by %d", ErrBadSnapshot, st.Pos, st.Owner)
		}
		if st.Houses < 0 || st.Houses > 4 {
			return fmt.Errorf("%w: asset %d with %d houses", ErrBadSnapshot, st.Pos, st.Houses)
		}
		if _, isProp := asset.(*board.Property); !isProp && (st.Houses != 0 || st.Hotel) {
			return fmt.Errorf("%w: buildings on non-property cell %d", ErrBadSnapshot, st.Pos)
		}
	}

	if snap.LandingPos < -1 || snap.LandingPos >= g.board.Size() {
		return fmt.Errorf("%w: landing position %d", ErrBadSnapshot, snap.LandingPos)
	}
	return nil
}
