// Package persist encodes engine snapshots as a flat key=value text
// document, one line per logical snapshot attribute. The format is the
// on-disk and in-Redis representation of a saved match; the engine
// itself only ever sees the Snapshot value.
//
// Conventions: booleans are 0/1, optional integers use -1 for "no
// value", int lists are comma separated and empty when the list is.
// Lines starting with # are comments.
package persist

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/DedS3t/monopoly-engine/platform/engine"
)

const header = "# monopoly-engine snapshot v1"

// Encode renders a snapshot as key=value text. Output is byte-stable:
// the same snapshot always encodes to the same document.
func Encode(snap engine.Snapshot) []byte {
	var b bytes.Buffer
	fmt.Fprintln(&b, header)

	fmt.Fprintf(&b, "players=%d\n", len(snap.Players))
	fmt.Fprintf(&b, "bank=%d\n", snap.Bank)
	fmt.Fprintf(&b, "finished=%s\n", flag(snap.Finished))

	fmt.Fprintf(&b, "turn.order=%s\n", joinInts(snap.Order))
	fmt.Fprintf(&b, "turn.index=%d\n", snap.Turn)
	fmt.Fprintf(&b, "turn.doubles=%d\n", snap.Doubles)
	fmt.Fprintf(&b, "turn.d1=%d\n", snap.LastD1)
	fmt.Fprintf(&b, "turn.d2=%d\n", snap.LastD2)
	fmt.Fprintf(&b, "turn.rolled=%s\n", flag(snap.Rolled))
	fmt.Fprintf(&b, "turn.mustjail=%s\n", flag(snap.MustJail))
	fmt.Fprintf(&b, "turn.pending=%s\n", flag(snap.MovePending))

	fmt.Fprintf(&b, "landing.pos=%d\n", snap.LandingPos)
	fmt.Fprintf(&b, "landing.bought=%s\n", flag(snap.Bought))
	fmt.Fprintf(&b, "landing.built=%s\n", flag(snap.Built))

	fmt.Fprintf(&b, "deck.size=%d\n", snap.DeckSize)
	fmt.Fprintf(&b, "deck.pointer=%d\n", snap.DeckPointer)
	fmt.Fprintf(&b, "deck.lastdrawn=%d\n", snap.LastDrawn)

	for _, p := range snap.Players {
		fmt.Fprintf(&b, "player.%d.balance=%d\n", p.ID, p.Balance)
		fmt.Fprintf(&b, "player.%d.pos=%d\n", p.ID, p.Pos)
		fmt.Fprintf(&b, "player.%d.active=%s\n", p.ID, flag(p.Active))
		fmt.Fprintf(&b, "player.%d.jail=%s\n", p.ID, flag(p.InJail))
		fmt.Fprintf(&b, "player.%d.jailcard=%s\n", p.ID, flag(p.JailFreeCard))
		fmt.Fprintf(&b, "player.%d.cards=%s\n", p.ID, joinInts(p.Cards))
	}

	assets := append([]engine.AssetState(nil), snap.Assets...)
	sort.Slice(assets, func(i, j int) bool { return assets[i].Pos < assets[j].Pos })
	for _, a := range assets {
		fmt.Fprintf(&b, "asset.%d.owner=%d\n", a.Pos, a.Owner)
		fmt.Fprintf(&b, "asset.%d.houses=%d\n", a.Pos, a.Houses)
		fmt.Fprintf(&b, "asset.%d.hotel=%s\n", a.Pos, flag(a.Hotel))
	}
	return b.Bytes()
}

// Decode parses a key=value document back into a snapshot. Unknown
// keys are rejected so a truncated or mangled document fails loudly
// instead of loading a half-match.
func Decode(data []byte) (engine.Snapshot, error) {
	var snap engine.Snapshot
	fields := make(map[string]string)

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return snap, fmt.Errorf("malformed line %q", line)
		}
		fields[parts[0]] = parts[1]
	}
	if err := sc.Err(); err != nil {
		return snap, err
	}

	d := decoder{fields: fields}
	numPlayers := d.intField("players")
	snap.Bank = d.intField("bank")
	snap.Finished = d.boolField("finished")

	snap.Order = d.intsField("turn.order")
	snap.Turn = d.intField("turn.index")
	snap.Doubles = d.intField("turn.doubles")
	snap.LastD1 = d.intField("turn.d1")
	snap.LastD2 = d.intField("turn.d2")
	snap.Rolled = d.boolField("turn.rolled")
	snap.MustJail = d.boolField("turn.mustjail")
	snap.MovePending = d.boolField("turn.pending")

	snap.LandingPos = d.intField("landing.pos")
	snap.Bought = d.boolField("landing.bought")
	snap.Built = d.boolField("landing.built")

	snap.DeckSize = d.intField("deck.size")
	snap.DeckPointer = d.intField("deck.pointer")
	snap.LastDrawn = d.intField("deck.lastdrawn")

	if d.err != nil {
		return snap, d.err
	}
	if numPlayers < 0 {
		return snap, fmt.Errorf("bad player count %d", numPlayers)
	}

	for i := 0; i < numPlayers; i++ {
		pre := fmt.Sprintf("player.%d.", i)
		snap.Players = append(snap.Players, engine.PlayerState{
			ID:           i,
			Balance:      d.intField(pre + "balance"),
			Pos:          d.intField(pre + "pos"),
			Active:       d.boolField(pre + "active"),
			InJail:       d.boolField(pre + "jail"),
			JailFreeCard: d.boolField(pre + "jailcard"),
			Cards:        d.intsField(pre + "cards"),
		})
	}
	if d.err != nil {
		return snap, d.err
	}

	// Remaining keys must all be asset entries.
	positions := make(map[int]bool)
	for key := range d.fields {
		var pos int
		var attr string
		if n, _ := fmt.Sscanf(key, "asset.%d.%s", &pos, &attr); n != 2 {
			return snap, fmt.Errorf("unknown field %q", key)
		}
		positions[pos] = true
	}
	sorted := make([]int, 0, len(positions))
	for pos := range positions {
		sorted = append(sorted, pos)
	}
	sort.Ints(sorted)
	for _, pos := range sorted {
		pre := fmt.Sprintf("asset.%d.", pos)
		snap.Assets = append(snap.Assets, engine.AssetState{
			Pos:    pos,
			Owner:  d.intField(pre + "owner"),
			Houses: d.intField(pre + "houses"),
			Hotel:  d.boolField(pre + "hotel"),
		})
	}
	if d.err != nil {
		return snap, d.err
	}
	// Every known attribute has been consumed; anything still here is
	// a stray key like asset.6.bogus.
	for key := range d.fields {
		return snap, fmt.Errorf("unknown field %q", key)
	}
	return snap, nil
}

type decoder struct {
	fields map[string]string
	err    error
}

func (d *decoder) raw(key string) string {
	v, ok := d.fields[key]
	if !ok {
		if d.err == nil {
			d.err = fmt.Errorf("missing field %q", key)
		}
		return ""
	}
	delete(d.fields, key)
	return v
}

func (d *decoder) intField(key string) int {
	v := d.raw(key)
	if d.err != nil {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		d.err = fmt.Errorf("field %q: %w", key, err)
		return 0
	}
	return n
}

func (d *decoder) boolField(key string) bool {
	v := d.raw(key)
	if d.err != nil {
		return false
	}
	switch v {
	case "0":
		return false
	case "1":
		return true
	}
	d.err = fmt.Errorf("field %q: want 0 or 1, got %q", key, v)
	return false
}

func (d *decoder) intsField(key string) []int {
	v := d.raw(key)
	if d.err != nil || v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			d.err = fmt.Errorf("field %q: %w", key, err)
			return nil
		}
		out = append(out, n)
	}
	return out
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func joinInts(ints []int) string {
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
