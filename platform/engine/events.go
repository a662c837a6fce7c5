package engine

import "github.com/DedS3t/monopoly-engine/platform/logging"

// EventKind labels a state mutation broadcast to observers.
type EventKind string

const (
	EventMoved       EventKind = "moved"
	EventSalary      EventKind = "salary"
	EventTax         EventKind = "tax"
	EventBonus       EventKind = "bonus"
	EventChance      EventKind = "chance"
	EventRent        EventKind = "rent"
	EventPurchase    EventKind = "purchase"
	EventHouse       EventKind = "house"
	EventHotel       EventKind = "hotel"
	EventJailed      EventKind = "jailed"
	EventJailEscape  EventKind = "jail-escape"
	EventJailRelease EventKind = "jail-release"
	EventLiquidation EventKind = "liquidation"
	EventBankrupt    EventKind = "bankrupt"
	EventTurn        EventKind = "turn"
	EventFinished    EventKind = "finished"
)

// Event is the payload handed to observers after a mutation. Fields
// that don't apply to a kind are zero.
type Event struct {
	Kind   EventKind
	Player int
	Pos    int
	Amount int
	Card   int
}

// Observer receives every event synchronously. A panicking observer is
// logged and ignored; it can never corrupt engine state.
type Observer func(Event)

// Subscribe registers an observer for all future events.
func (g *Game) Subscribe(fn Observer) {
	g.observers = append(g.observers, fn)
}

func (g *Game) emit(e Event) {
	for _, fn := range g.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.Get().WithField("event", e.Kind).Warnf("observer panicked: %v", r)
				}
			}()
			fn(e)
		}()
	}
}
