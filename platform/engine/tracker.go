package engine

import "fmt"

// TurnTracker keeps the rotation and the one-roll-per-turn gate. It
// only sees player ids; activity checks go through the players slice
// the engine hands it at construction.
type TurnTracker struct {
	players []*Player
	order   []int
	cur     int

	rolled   bool
	doubles  int
	lastD1   int
	lastD2   int
	mustJail bool
}

func newTracker(players []*Player) *TurnTracker {
	order := make([]int, len(players))
	for i := range players {
		order[i] = i
	}
	return &TurnTracker{players: players, order: order, lastD1: -1, lastD2: -1}
}

// SetOrder redefines the rotation. Only legal before the first roll of
// the match; the order must be a permutation of the player ids.
func (t *TurnTracker) SetOrder(ids []int) error {
	if len(ids) != len(t.players) {
		return fmt.Errorf("%w: order has %d entries for %d players", ErrBadSnapshot, len(ids), len(t.players))
	}
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 0 || id >= len(t.players) || seen[id] {
			return fmt.Errorf("%w: bad turn order entry %d", ErrBadSnapshot, id)
		}
		seen[id] = true
	}
	t.order = append([]int(nil), ids...)
	t.cur = 0
	return nil
}

// Current resolves to the active player at the front of the rotation.
// A read-only lookup: if the seat at the pointer went bankrupt the
// resolution walks forward without moving the pointer, so querying
// never changes where EndTurn advances from. With no active players
// left it returns the pointer's seat as-is (the engine has already
// ended the match in that case).
func (t *TurnTracker) Current() int {
	for i := 0; i < len(t.order); i++ {
		id := t.order[(t.cur+i)%len(t.order)]
		if t.players[id].Active {
			return id
		}
	}
	return t.order[t.cur]
}

// RegisterRoll records a roll for the current player. A double rolled
// outside jail re-opens the gate for an extra roll; the third
// consecutive double instead raises the must-jail override. Rolls made
// while jailed never count as doubles.
func (t *TurnTracker) RegisterRoll(d1, d2 int, inJail bool) error {
	if d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
		return ErrDie
	}
	if t.rolled {
		return ErrAlreadyRolled
	}
	t.lastD1, t.lastD2 = d1, d2

	if inJail {
		t.rolled = true
		return nil
	}
	if d1 == d2 {
		t.doubles++
		if t.doubles >= 3 {
			t.mustJail = true
			t.rolled = true
			return nil
		}
		// extra roll within the same turn
		t.rolled = false
		return nil
	}
	t.doubles = 0
	t.rolled = true
	return nil
}

func (t *TurnTracker) Rolled() bool         { return t.rolled }
func (t *TurnTracker) Doubles() int         { return t.doubles }
func (t *TurnTracker) LastRoll() (int, int) { return t.lastD1, t.lastD2 }
func (t *TurnTracker) MustJail() bool       { return t.mustJail }
func (t *TurnTracker) Order() []int         { return append([]int(nil), t.order...) }

func (t *TurnTracker) clearMustJail() { t.mustJail = false }

// resetDoubles is called on jail entry and jail release.
func (t *TurnTracker) resetDoubles() { t.doubles = 0 }

func (t *TurnTracker) index() int { return t.cur }

// restore force-sets the turn state from a snapshot. Validation is
// the importer's job.
func (t *TurnTracker) restore(cur, doubles, d1, d2 int, rolled, mustJail bool) {
	t.cur = cur
	t.doubles = doubles
	t.lastD1, t.lastD2 = d1, d2
	t.rolled = rolled
	t.mustJail = mustJail
}

// EndTurn hands the dice to the next active player: one step forward
// from the stored pointer, then past any bankrupt seats. The last roll
// pair survives as read-only memory; everything else about the turn
// resets.
func (t *TurnTracker) EndTurn() {
	t.cur = (t.cur + 1) % len(t.order)
	t.normalize()
	t.rolled = false
	t.doubles = 0
	t.mustJail = false
}

// forfeit closes the roll gate when the bankrupt seat is the one the
// pointer is parked on, so the turn can still end even if a double
// had reopened the gate.
func (t *TurnTracker) forfeit(id int) {
	if t.order[t.cur] != id {
		return
	}
	t.rolled = true
	t.doubles = 0
	t.mustJail = false
}

// normalize parks the pointer on the next active seat at or after its
// current slot. No-op when every seat is bankrupt.
func (t *TurnTracker) normalize() {
	for i := 0; i < len(t.order); i++ {
		idx := (t.cur + i) % len(t.order)
		if t.players[t.order[idx]].Active {
			t.cur = idx
			return
		}
	}
}
