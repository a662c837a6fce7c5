package engine

import "testing"

func TestDeckCatalogShape(t *testing.T) {
	d := newDeck()
	if d.Size() != 30 {
		t.Fatalf("Size() = %d, want 30", d.Size())
	}
	for i, c := range chanceCatalog {
		if c.ID != i+1 {
			t.Errorf("card at index %d has id %d", i, c.ID)
		}
		switch c.Effect {
		case ReceiveFromBank, PayToBank, ReceiveFromEach:
			if c.Amount <= 0 {
				t.Errorf("monetary card %d has amount %d", c.ID, c.Amount)
			}
		case JailFree, CardGoToJail:
			if c.Amount != 0 {
				t.Errorf("non-monetary card %d has amount %d", c.ID, c.Amount)
			}
		default:
			t.Errorf("card %d has unknown effect %q", c.ID, c.Effect)
		}
	}
}

func TestDeckDrawsAreCircularAndOrdered(t *testing.T) {
	d := newDeck()
	for round := 0; round < 2; round++ {
		for want := 1; want <= d.Size(); want++ {
			card := d.Draw()
			if card.ID != want {
				t.Fatalf("draw = card %d, want %d", card.ID, want)
			}
		}
	}
	if d.Pointer() != 0 {
		t.Errorf("pointer did not wrap: %d", d.Pointer())
	}
}

func TestDeckHeldCards(t *testing.T) {
	d := newDeck()
	d.Hold(1, 17)
	d.Hold(1, 7)

	if got := d.Held(1); len(got) != 2 || got[0] != 7 || got[1] != 17 {
		t.Errorf("Held(1) = %v", got)
	}

	id, ok := d.Release(1)
	if !ok || id != 7 {
		t.Errorf("Release(1) = %d,%v, want 7,true", id, ok)
	}
	if got := d.Held(1); len(got) != 1 || got[0] != 17 {
		t.Errorf("Held(1) after release = %v", got)
	}

	d.Discard(1)
	if got := d.Held(1); len(got) != 0 {
		t.Errorf("Held(1) after discard = %v", got)
	}
	if _, ok := d.Release(1); ok {
		t.Error("Release on empty set succeeded")
	}
}

func TestDeckLastDrawnIsOneShot(t *testing.T) {
	d := newDeck()
	if got := d.TakeLastDrawn(); got != -1 {
		t.Errorf("TakeLastDrawn() before any draw = %d, want -1", got)
	}
	d.Draw()
	if got := d.TakeLastDrawn(); got != 1 {
		t.Errorf("TakeLastDrawn() = %d, want 1", got)
	}
	if got := d.TakeLastDrawn(); got != -1 {
		t.Errorf("second TakeLastDrawn() = %d, want -1 (buffer drains)", got)
	}
}
