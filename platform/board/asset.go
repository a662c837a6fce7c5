package board

import "errors"

// NoOwner is the owner id of an asset held by the bank.
const NoOwner = -1

var (
	ErrHousesMaxed = errors.New("property already has four houses")
	ErrHasHotel    = errors.New("property already has a hotel")
	ErrNoHouses    = errors.New("hotel requires at least one house")
)

// Rent percentages applied to a property's purchase price.
const (
	baseRentPct     = 10
	perHouseRentPct = 15
	hotelRentPct    = 30
)

// Asset is an ownable board cell. The set of kinds is closed:
// Property (buildable, formula rent) and Company (fixed rent).
type Asset interface {
	Pos() int
	Name() string
	Price() int
	Owned() bool
	Owner() int
	SetOwner(id int)
	// Rent owed by a visitor. Zero while the asset is unowned;
	// the engine keeps owners from paying themselves.
	Rent() int
	// AggregateValue is the purchase price plus everything built on
	// top, used for liquidation and ranking.
	AggregateValue() int
	// Reset returns the asset to the bank, tearing down buildings.
	Reset()
}

// Property is a street cell. Build order is houses 0..4, then at most
// one hotel; the hotel does not clear the house count.
type Property struct {
	pos        int
	name       string
	price      int
	housePrice int
	hotelPrice int
	owner      int
	houses     int
	hotel      bool
}

func NewProperty(pos int, name string, price, housePrice, hotelPrice int) *Property {
	return &Property{
		pos:        pos,
		name:       name,
		price:      price,
		housePrice: housePrice,
		hotelPrice: hotelPrice,
		owner:      NoOwner,
	}
}

func (p *Property) Pos() int        { return p.pos }
func (p *Property) Name() string    { return p.name }
func (p *Property) Price() int      { return p.price }
func (p *Property) Owned() bool     { return p.owner != NoOwner }
func (p *Property) Owner() int      { return p.owner }
func (p *Property) SetOwner(id int) { p.owner = id }
func (p *Property) Houses() int     { return p.houses }
func (p *Property) Hotel() bool     { return p.hotel }
func (p *Property) HousePrice() int { return p.housePrice }
func (p *Property) HotelPrice() int { return p.hotelPrice }

func (p *Property) Rent() int {
	if !p.Owned() {
		return 0
	}
	rent := p.price * baseRentPct / 100
	rent += p.price * perHouseRentPct / 100 * p.houses
	if p.hotel {
		rent += p.price * hotelRentPct / 100
	}
	return rent
}

func (p *Property) AggregateValue() int {
	val := p.price + p.housePrice*p.houses
	if p.hotel {
		val += p.hotelPrice
	}
	return val
}

func (p *Property) AddHouse() error {
	if p.hotel {
		return ErrHasHotel
	}
	if p.houses >= 4 {
		return ErrHousesMaxed
	}
	p.houses++
	return nil
}

func (p *Property) AddHotel() error {
	if p.hotel {
		return ErrHasHotel
	}
	if p.houses < 1 {
		return ErrNoHouses
	}
	p.hotel = true
	return nil
}

// SetBuildings force-sets the construction state. Used when restoring
// a snapshot, which bypasses the build-order checks.
func (p *Property) SetBuildings(houses int, hotel bool) {
	p.houses = houses
	p.hotel = hotel
}

func (p *Property) Reset() {
	p.owner = NoOwner
	p.houses = 0
	p.hotel = false
}

// Company is a utility or transport cell with a flat rent.
type Company struct {
	pos   int
	name  string
	price int
	rent  int
	owner int
}

func NewCompany(pos int, name string, price, rent int) *Company {
	return &Company{pos: pos, name: name, price: price, rent: rent, owner: NoOwner}
}

func (c *Company) Pos() int        { return c.pos }
func (c *Company) Name() string    { return c.name }
func (c *Company) Price() int      { return c.price }
func (c *Company) Owned() bool     { return c.owner != NoOwner }
func (c *Company) Owner() int      { return c.owner }
func (c *Company) SetOwner(id int) { c.owner = id }

func (c *Company) Rent() int {
	if !c.Owned() {
		return 0
	}
	return c.rent
}

func (c *Company) AggregateValue() int { return c.price }

func (c *Company) Reset() { c.owner = NoOwner }
