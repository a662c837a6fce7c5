package engine

import "sort"

// ChanceDeck walks the fixed catalog with a circular pointer and
// remembers which jail-free cards each player is sitting on. Draws are
// deliberately not randomized: the same draw sequence always yields
// the same card ids, which keeps matches replayable.
type ChanceDeck struct {
	cards   []Card
	pointer int
	held    map[int][]int // player id -> held card ids
	// lastDrawn buffers the most recent draw for a one-shot pickup by
	// the notification layer. -1 when drained.
	lastDrawn int
}

func newDeck() *ChanceDeck {
	return &ChanceDeck{
		cards:     chanceCatalog,
		held:      make(map[int][]int),
		lastDrawn: -1,
	}
}

func (d *ChanceDeck) Size() int    { return len(d.cards) }
func (d *ChanceDeck) Pointer() int { return d.pointer }

// Draw advances the pointer and returns the card under it. Applying
// the card's effect is the engine's job.
func (d *ChanceDeck) Draw() Card {
	card := d.cards[d.pointer]
	d.pointer = (d.pointer + 1) % len(d.cards)
	d.lastDrawn = card.ID
	return card
}

// Card looks a catalog entry up by its 1-based id.
func (d *ChanceDeck) Card(id int) (Card, bool) {
	if id < 1 || id > len(d.cards) {
		return Card{}, false
	}
	return d.cards[id-1], true
}

// Hold records that a player keeps a drawn card (jail-free cards only;
// every other effect consumes the card on the spot).
func (d *ChanceDeck) Hold(player, cardID int) {
	d.held[player] = append(d.held[player], cardID)
}

// Release removes one held card from the player, lowest id first.
func (d *ChanceDeck) Release(player int) (int, bool) {
	ids := d.held[player]
	if len(ids) == 0 {
		return 0, false
	}
	sort.Ints(ids)
	id := ids[0]
	d.held[player] = ids[1:]
	return id, true
}

// Discard drops everything a player holds. Used on bankruptcy.
func (d *ChanceDeck) Discard(player int) {
	delete(d.held, player)
}

// Held returns a copy of the player's held card ids.
func (d *ChanceDeck) Held(player int) []int {
	ids := append([]int(nil), d.held[player]...)
	sort.Ints(ids)
	return ids
}

// TakeLastDrawn drains the one-shot draw buffer. Returns -1 when no
// draw happened since the last call.
func (d *ChanceDeck) TakeLastDrawn() int {
	id := d.lastDrawn
	d.lastDrawn = -1
	return id
}

func (d *ChanceDeck) peekLastDrawn() int { return d.lastDrawn }

func (d *ChanceDeck) setPointer(p int)   { d.pointer = p % len(d.cards) }
func (d *ChanceDeck) setLastDrawn(i int) { d.lastDrawn = i }

func (d *ChanceDeck) setHeld(player int, ids []int) {
	if len(ids) == 0 {
		delete(d.held, player)
		return
	}
	d.held[player] = append([]int(nil), ids...)
}
