package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Size is the number of cells on the canonical board.
const Size = 40

//go:embed layout.json
var layoutJSON []byte

type cellDef struct {
	Pos    int      `json:"pos"`
	Name   string   `json:"name"`
	Type   CellType `json:"type"`
	Amount int      `json:"amount"`
	Price  int      `json:"price"`
	Rent   int      `json:"rent"`
	House  int      `json:"house"`
	Hotel  int      `json:"hotel"`
}

// Board is the fixed ring of cells plus the asset instances sitting on
// the ownable ones. Cells never change after Load; assets carry the
// mutable ownership and construction state.
type Board struct {
	cells  []Cell
	assets map[int]Asset
}

// Load builds the canonical 40-cell board from the embedded layout.
func Load() (*Board, error) {
	return LoadLayout(layoutJSON)
}

// LoadLayout builds a board from a JSON cell list. Mostly here so
// tests can feed small boards.
func LoadLayout(data []byte) (*Board, error) {
	var defs []cellDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse board layout: %w", err)
	}
	if len(defs) == 0 {
		return nil, errors.New("board layout is empty")
	}

	b := &Board{
		cells:  make([]Cell, len(defs)),
		assets: make(map[int]Asset),
	}
	seen := make(map[int]bool)
	for _, d := range defs {
		if d.Pos < 0 || d.Pos >= len(defs) {
			return nil, fmt.Errorf("cell position %d out of range", d.Pos)
		}
		if seen[d.Pos] {
			return nil, fmt.Errorf("duplicate cell position %d", d.Pos)
		}
		seen[d.Pos] = true
		b.cells[d.Pos] = Cell{Pos: d.Pos, Name: d.Name, Type: d.Type, Amount: d.Amount}

		switch d.Type {
		case PropertyT:
			b.assets[d.Pos] = NewProperty(d.Pos, d.Name, d.Price, d.House, d.Hotel)
		case CompanyT:
			b.assets[d.Pos] = NewCompany(d.Pos, d.Name, d.Price, d.Rent)
		}
	}
	return b, nil
}

func (b *Board) Size() int { return len(b.cells) }

func (b *Board) Cell(pos int) (Cell, error) {
	if pos < 0 || pos >= len(b.cells) {
		return Cell{}, fmt.Errorf("cell position %d out of range", pos)
	}
	return b.cells[pos], nil
}

// Asset returns the ownable asset at pos, if the cell carries one.
func (b *Board) Asset(pos int) (Asset, bool) {
	a, ok := b.assets[pos]
	return a, ok
}

// Assets returns every asset in board order.
func (b *Board) Assets() []Asset {
	out := make([]Asset, 0, len(b.assets))
	for _, a := range b.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos() < out[j].Pos() })
	return out
}

// OwnedBy returns the assets currently held by a player, board order.
func (b *Board) OwnedBy(player int) []Asset {
	out := make([]Asset, 0)
	for _, a := range b.Assets() {
		if a.Owner() == player {
			out = append(out, a)
		}
	}
	return out
}

// JailPos finds the jail cell. The canonical layout has exactly one.
func (b *Board) JailPos() (int, error) {
	for _, c := range b.cells {
		if c.Type == Jail {
			return c.Pos, nil
		}
	}
	return 0, errors.New("board has no jail cell")
}
