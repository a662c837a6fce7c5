package engine

import "testing"

func testPlayers(n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = newPlayer(i)
	}
	return players
}

func TestTrackerOneRollPerTurn(t *testing.T) {
	tr := newTracker(testPlayers(2))

	if err := tr.RegisterRoll(2, 5, false); err != nil {
		t.Fatalf("first roll: %v", err)
	}
	if err := tr.RegisterRoll(1, 3, false); err != ErrAlreadyRolled {
		t.Errorf("second roll error = %v, want ErrAlreadyRolled", err)
	}

	tr.EndTurn()
	if tr.Current() != 1 {
		t.Errorf("Current() after EndTurn = %d, want 1", tr.Current())
	}
	if err := tr.RegisterRoll(4, 4, false); err != nil {
		t.Errorf("next player's roll rejected: %v", err)
	}
}

func TestTrackerDoubleReopensGate(t *testing.T) {
	tr := newTracker(testPlayers(2))

	if err := tr.RegisterRoll(4, 4, false); err != nil {
		t.Fatal(err)
	}
	if tr.Rolled() {
		t.Error("double should leave the gate open")
	}
	if tr.Doubles() != 1 {
		t.Errorf("Doubles() = %d, want 1", tr.Doubles())
	}

	if err := tr.RegisterRoll(2, 6, false); err != nil {
		t.Fatal(err)
	}
	if !tr.Rolled() {
		t.Error("non-double must close the gate")
	}
	if tr.Doubles() != 0 {
		t.Errorf("non-double must reset the counter, got %d", tr.Doubles())
	}
}

func TestTrackerThreeDoubles(t *testing.T) {
	tr := newTracker(testPlayers(2))

	for i := 0; i < 3; i++ {
		if err := tr.RegisterRoll(5, 5, false); err != nil {
			t.Fatalf("double #%d: %v", i+1, err)
		}
	}
	if !tr.MustJail() {
		t.Error("third consecutive double must raise the jail override")
	}
	if !tr.Rolled() {
		t.Error("the jail override closes the roll gate")
	}
}

func TestTrackerJailRollsAreNotDoubles(t *testing.T) {
	tr := newTracker(testPlayers(2))
	tr.doubles = 2

	if err := tr.RegisterRoll(6, 6, true); err != nil {
		t.Fatal(err)
	}
	if tr.MustJail() {
		t.Error("a double rolled in jail must never trigger the override")
	}
	if tr.Doubles() != 2 {
		t.Errorf("jail roll changed the double counter: %d", tr.Doubles())
	}
}

func TestTrackerSkipsInactivePlayers(t *testing.T) {
	players := testPlayers(4)
	tr := newTracker(players)

	players[1].Active = false
	players[2].Active = false

	tr.EndTurn()
	if got := tr.Current(); got != 3 {
		t.Errorf("Current() = %d, want 3 (skipping bankrupt seats)", got)
	}
	tr.EndTurn()
	if got := tr.Current(); got != 0 {
		t.Errorf("Current() = %d, want 0 after wrap", got)
	}
}

func TestTrackerSetOrder(t *testing.T) {
	tr := newTracker(testPlayers(3))

	if err := tr.SetOrder([]int{2, 0, 1}); err != nil {
		t.Fatalf("SetOrder: %v", err)
	}
	if tr.Current() != 2 {
		t.Errorf("Current() = %d, want 2", tr.Current())
	}

	for _, bad := range [][]int{{0, 1}, {0, 1, 1}, {0, 1, 3}} {
		if err := tr.SetOrder(bad); err == nil {
			t.Errorf("SetOrder(%v) accepted", bad)
		}
	}
}
