package board

// CellType tags what landing on a cell means to the engine.
type CellType string

const (
	Start       CellType = "start"
	Tax         CellType = "tax"
	Bonus       CellType = "bonus"
	Jail        CellType = "jail"
	GoToJail    CellType = "go_to_jail"
	Chance      CellType = "chance"
	FreeParking CellType = "free_parking"
	Generic     CellType = "generic"
	PropertyT   CellType = "property"
	CompanyT    CellType = "company"
)

// Cell is one square of the board. Amount is only meaningful for
// tax and bonus cells.
type Cell struct {
	Pos    int      `json:"pos"`
	Name   string   `json:"name"`
	Type   CellType `json:"type"`
	Amount int      `json:"amount"`
}

// Ownable reports whether the cell carries a purchasable asset.
func (c Cell) Ownable() bool {
	return c.Type == PropertyT || c.Type == CompanyT
}
