package engine

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name        string
		pos, d1, d2 int
		wantPos     int
		wantCrossed bool
	}{
		{"simple advance", 0, 3, 3, 6, false},
		{"mid board", 12, 2, 5, 19, false},
		{"wrap past start", 38, 4, 2, 4, true},
		{"land exactly on start", 34, 2, 4, 0, true},
		{"one short of wrapping", 27, 6, 6, 39, false},
		{"wrap from last cell", 39, 1, 2, 2, true},
		{"max roll from start", 0, 6, 6, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, crossed, err := Move(tt.pos, tt.d1, tt.d2, 40)
			if err != nil {
				t.Fatalf("Move() error: %v", err)
			}
			if got != tt.wantPos {
				t.Errorf("Move() pos = %d, want %d", got, tt.wantPos)
			}
			if crossed != tt.wantCrossed {
				t.Errorf("Move() crossedStart = %v, want %v", crossed, tt.wantCrossed)
			}
		})
	}
}

func TestMoveExhaustive(t *testing.T) {
	// Every position and roll pair must obey the modular formula.
	for pos := 0; pos < 40; pos++ {
		for d1 := 1; d1 <= 6; d1++ {
			for d2 := 1; d2 <= 6; d2++ {
				got, crossed, err := Move(pos, d1, d2, 40)
				if err != nil {
					t.Fatalf("Move(%d,%d,%d) error: %v", pos, d1, d2, err)
				}
				want := (pos + d1 + d2) % 40
				if got != want {
					t.Fatalf("Move(%d,%d,%d) = %d, want %d", pos, d1, d2, got, want)
				}
				if wantCrossed := pos+d1+d2 >= 40; crossed != wantCrossed {
					t.Fatalf("Move(%d,%d,%d) crossed = %v, want %v", pos, d1, d2, crossed, wantCrossed)
				}
			}
		}
	}
}

func TestMoveRejectsBadDice(t *testing.T) {
	for _, pair := range [][2]int{{0, 3}, {3, 0}, {7, 3}, {3, 7}, {-1, 2}} {
		if _, _, err := Move(0, pair[0], pair[1], 40); err != ErrDie {
			t.Errorf("Move(0,%d,%d) error = %v, want ErrDie", pair[0], pair[1], err)
		}
	}
}
