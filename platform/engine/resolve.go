package engine

import "github.com/DedS3t/monopoly-engine/platform/board"

// LiquidationPct is the fraction of aggregate value realized when an
// asset is force-sold back to the bank.
const LiquidationPct = 90

// resolveLanding applies the cell effects for the token's resting
// cell, in the fixed order tax/bonus, chance, rent (the cross-start
// salary was already handled during movement).
func (g *Game) resolveLanding(p *Player) {
	cell, err := g.board.Cell(p.Pos)
	if err != nil {
		return
	}

	switch cell.Type {
	case board.Tax:
		paid := g.charge(p, cell.Amount, nil)
		g.emit(Event{Kind: EventTax, Player: p.ID, Pos: cell.Pos, Amount: paid})
		return
	case board.Bonus:
		g.bank.Debit(cell.Amount)
		p.Balance += cell.Amount
		g.emit(Event{Kind: EventBonus, Player: p.ID, Pos: cell.Pos, Amount: cell.Amount})
		return
	case board.Chance:
		card := g.deck.Draw()
		g.emit(Event{Kind: EventChance, Player: p.ID, Card: card.ID})
		g.applyCard(p, card)
		return
	case board.GoToJail:
		g.sendToJail(p)
		return
	}

	// Rent: owed only on someone else's asset.
	asset, ok := g.board.Asset(p.Pos)
	if !ok || !asset.Owned() || asset.Owner() == p.ID {
		return
	}
	rent := asset.Rent()
	if rent == 0 {
		return
	}
	owner := g.players[asset.Owner()]
	paid := g.charge(p, rent, owner)
	g.emit(Event{Kind: EventRent, Player: p.ID, Pos: asset.Pos(), Amount: paid})
}

// applyCard runs a drawn chance card's effect. Only jail-free cards
// stay with the player; everything else is spent on the spot.
func (g *Game) applyCard(p *Player, card Card) {
	switch card.Effect {
	case ReceiveFromBank:
		g.bank.Debit(card.Amount)
		p.Balance += card.Amount
	case PayToBank:
		g.charge(p, card.Amount, nil)
	case ReceiveFromEach:
		// Each payer goes through the full shortfall path on their
		// own; the drawer collects whatever each one could raise.
		for _, q := range g.players {
			if q.ID == p.ID || !q.Active {
				continue
			}
			g.charge(q, card.Amount, p)
		}
	case JailFree:
		p.JailFreeCard = true
		g.deck.Hold(p.ID, card.ID)
	case CardGoToJail:
		g.sendToJail(p)
	}
}

// sendToJail teleports the player to the jail cell, unless a held
// jail-free card blocks the entry; spending the card queues one free
// chained roll+move for the top-level move loop.
func (g *Game) sendToJail(p *Player) {
	g.tracker.resetDoubles()
	if p.JailFreeCard {
		p.JailFreeCard = false
		g.deck.Release(p.ID)
		g.autoRoll = true
		g.emit(Event{Kind: EventJailEscape, Player: p.ID})
		return
	}
	p.Pos = g.jailPos
	p.InJail = true
	g.landing = landing{pos: g.jailPos}
	g.emit(Event{Kind: EventJailed, Player: p.ID, Pos: g.jailPos})
}

func (g *Game) releaseFromJail(p *Player) {
	p.InJail = false
	g.tracker.resetDoubles()
	g.emit(Event{Kind: EventJailRelease, Player: p.ID})
}

// charge collects amount from payer, to the bank when recipient is
// nil. A shortfall triggers forced liquidation first; if the balance
// still ends below zero the payer goes bankrupt. Returns the amount
// actually transferred, which is all the payer could raise.
func (g *Game) charge(payer *Player, amount int, recipient *Player) int {
	if amount <= 0 {
		return 0
	}
	if payer.Balance < amount {
		g.liquidate(payer, amount)
	}

	paid := amount
	if payer.Balance < amount {
		paid = payer.Balance
		if paid < 0 {
			paid = 0
		}
	}
	payer.Balance -= amount
	if recipient != nil {
		recipient.Balance += paid
	} else {
		g.bank.Credit(paid)
	}

	if payer.Balance < 0 {
		g.bankrupt(payer)
	}
	return paid
}

// liquidate force-sells the player's assets at LiquidationPct of
// aggregate value, highest value first, until the balance covers need
// or nothing is left to sell.
func (g *Game) liquidate(p *Player, need int) {
	for p.Balance < need {
		best, bestVal := -1, -1
		for _, a := range g.board.OwnedBy(p.ID) {
			if v := a.AggregateValue(); v > bestVal {
				best, bestVal = a.Pos(), v
			}
		}
		if best < 0 {
			return
		}
		asset, _ := g.board.Asset(best)
		proceeds := asset.AggregateValue() * LiquidationPct / 100
		asset.Reset()
		g.bank.Debit(proceeds)
		p.Balance += proceeds
		g.emit(Event{Kind: EventLiquidation, Player: p.ID, Pos: best, Amount: proceeds})
	}
}

// bankrupt deactivates the player: assets back to the bank, held cards
// discarded, balance zeroed. The seat itself stays so ids remain
// stable. One player left standing ends the match.
func (g *Game) bankrupt(p *Player) {
	for _, a := range g.board.OwnedBy(p.ID) {
		a.Reset()
	}
	g.deck.Discard(p.ID)
	p.JailFreeCard = false
	p.InJail = false
	p.Active = false
	p.Balance = 0
	g.tracker.forfeit(p.ID)
	g.emit(Event{Kind: EventBankrupt, Player: p.ID})

	if g.activeCount() == 1 {
		g.Finish()
	}
}

func (g *Game) activeCount() int {
	n := 0
	for _, p := range g.players {
		if p.Active {
			n++
		}
	}
	return n
}
