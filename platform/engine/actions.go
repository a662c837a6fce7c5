package engine

import (
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// CanBuy reports whether the current player may purchase the asset
// they are standing on, with the reason when they may not.
func (g *Game) CanBuy() error {
	if g.finished {
		return ErrFinished
	}
	p := g.current()
	asset, ok := g.board.Asset(p.Pos)
	if !ok {
		return ErrNotOwnable
	}
	if asset.Owned() {
		return ErrAlreadyOwned
	}
	if g.landing.bought {
		return ErrBoughtThisStop
	}
	if p.Balance < asset.Price() {
		return ErrCannotAfford
	}
	return nil
}

// Buy purchases the asset under the current player's token. At most
// one purchase per landing; buying blocks construction on the same
// landing.
func (g *Game) Buy() error {
	if err := g.CanBuy(); err != nil {
		return err
	}
	p := g.current()
	asset, _ := g.board.Asset(p.Pos)

	p.Balance -= asset.Price()
	g.bank.Credit(asset.Price())
	asset.SetOwner(p.ID)
	g.landing.bought = true
	g.emit(Event{Kind: EventPurchase, Player: p.ID, Pos: asset.Pos(), Amount: asset.Price()})
	return nil
}

// buildTarget runs the checks shared by house and hotel construction
// and hands back the property to build on.
func (g *Game) buildTarget() (*board.Property, *Player, error) {
	if g.finished {
		return nil, nil, ErrFinished
	}
	p := g.current()
	asset, ok := g.board.Asset(p.Pos)
	if !ok {
		return nil, nil, ErrNotOwnable
	}
	prop, ok := asset.(*board.Property)
	if !ok {
		return nil, nil, ErrNotOwnable
	}
	if prop.Owner() != p.ID {
		return nil, nil, ErrNotOwner
	}
	if g.landing.pos != p.Pos {
		return nil, nil, ErrNotOnAsset
	}
	if g.landing.bought {
		return nil, nil, ErrBoughtThisStop
	}
	if g.landing.built {
		return nil, nil, ErrBuiltThisStop
	}
	return prop, p, nil
}

// CanBuildHouse reports whether BuildHouse would succeed right now.
func (g *Game) CanBuildHouse() error {
	prop, p, err := g.buildTarget()
	if err != nil {
		return err
	}
	if prop.Hotel() {
		return board.ErrHasHotel
	}
	if prop.Houses() >= 4 {
		return board.ErrHousesMaxed
	}
	if p.Balance < prop.HousePrice() {
		return ErrCannotAfford
	}
	return nil
}

// CanBuildHotel reports whether BuildHotel would succeed right now.
func (g *Game) CanBuildHotel() error {
	prop, p, err := g.buildTarget()
	if err != nil {
		return err
	}
	if prop.Hotel() {
		return board.ErrHasHotel
	}
	if prop.Houses() < 1 {
		return board.ErrNoHouses
	}
	if p.Balance < prop.HotelPrice() {
		return ErrCannotAfford
	}
	return nil
}

// BuildHouse adds one house to the property the current player is
// standing on. One construction per landing, never on the landing
// that bought the asset.
func (g *Game) BuildHouse() error {
	prop, p, err := g.buildTarget()
	if err != nil {
		return err
	}
	if p.Balance < prop.HousePrice() {
		return ErrCannotAfford
	}
	if err := prop.AddHouse(); err != nil {
		return err
	}
	p.Balance -= prop.HousePrice()
	g.bank.Credit(prop.HousePrice())
	g.landing.built = true
	g.emit(Event{Kind: EventHouse, Player: p.ID, Pos: prop.Pos(), Amount: prop.HousePrice()})
	return nil
}

// BuildHotel upgrades the property to a hotel. Requires at least one
// house; the house count stays as it is.
func (g *Game) BuildHotel() error {
	prop, p, err := g.buildTarget()
	if err != nil {
		return err
	}
	if p.Balance < prop.HotelPrice() {
		return ErrCannotAfford
	}
	if err := prop.AddHotel(); err != nil {
		return err
	}
	p.Balance -= prop.HotelPrice()
	g.bank.Credit(prop.HotelPrice())
	g.landing.built = true
	g.emit(Event{Kind: EventHotel, Player: p.ID, Pos: prop.Pos(), Amount: prop.HotelPrice()})
	return nil
}

// UseJailCard spends a held jail-free card to walk out of jail. The
// player still rolls and moves normally afterwards this turn.
func (g *Game) UseJailCard() error {
	if g.finished {
		return ErrFinished
	}
	p := g.current()
	if !p.InJail {
		return ErrNotInJail
	}
	if !p.JailFreeCard {
		return ErrNoJailCard
	}
	p.JailFreeCard = false
	g.deck.Release(p.ID)
	g.releaseFromJail(p)
	return nil
}
