package engine

import (
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// landing tracks the cell the active token last came to rest on and
// which of the two per-landing actions have been spent there.
type landing struct {
	pos    int
	bought bool
	built  bool
}

// Game is the rules orchestrator. One instance per match, strictly
// single-threaded: every call completes all of its effects before
// returning.
type Game struct {
	board   *board.Board
	bank    *Bank
	players []*Player
	tracker *TurnTracker
	deck    *ChanceDeck
	roller  *Roller
	jailPos int

	landing landing
	// pending is true between a registered roll and its movement.
	pending bool
	// autoRoll asks the top-level move loop for one more free
	// roll+move (granted when a jail-free card blocks a jail entry).
	autoRoll bool
	// chaining guards against the auto-roll loop re-entering itself.
	chaining bool

	finished  bool
	observers []Observer
}

// New starts a match on the given board with players seated 0..n-1. A
// nil roller gets a crypto-seeded one; pass NewRoller(seed) for
// reproducible matches.
func New(b *board.Board, numPlayers int, roller *Roller) (*Game, error) {
	if numPlayers < 2 || numPlayers > 6 {
		return nil, ErrPlayerCount
	}
	if roller == nil {
		var err error
		roller, err = NewRandomRoller()
		if err != nil {
			return nil, err
		}
	}
	jailPos, err := b.JailPos()
	if err != nil {
		return nil, err
	}

	players := make([]*Player, numPlayers)
	for i := range players {
		players[i] = newPlayer(i)
	}
	return &Game{
		board:   b,
		bank:    NewBank(DefaultBankFunds),
		players: players,
		tracker: newTracker(players),
		deck:    newDeck(),
		roller:  roller,
		jailPos: jailPos,
		landing: landing{pos: -1},
	}, nil
}

// Roll throws both dice for the current player.
func (g *Game) Roll() (int, int, error) {
	d1, d2 := g.roller.Roll(), g.roller.Roll()
	if err := g.RollDice(d1, d2); err != nil {
		return 0, 0, err
	}
	return d1, d2, nil
}

// RollDice registers a forced roll for the current player. Movement is
// a separate step; see MoveAndResolve.
func (g *Game) RollDice(d1, d2 int) error {
	if g.finished {
		return ErrFinished
	}
	if g.pending {
		return ErrMovePending
	}
	p := g.current()
	if err := g.tracker.RegisterRoll(d1, d2, p.InJail); err != nil {
		return err
	}
	g.pending = true
	return nil
}

// MoveResult summarizes what a MoveAndResolve call did.
type MoveResult struct {
	D1, D2       int
	From, To     int
	CrossedStart bool
	// Jailed is true when the move ended with the player behind bars.
	Jailed bool
	// Released is true when the roll was a double that opened the
	// jail door this turn.
	Released bool
	// StayedJailed is true when the turn was consumed in jail with no
	// movement at all.
	StayedJailed bool
	// AutoRolls counts chained free rolls granted by jail-free cards.
	AutoRolls int
}

// MoveAndResolve applies the pending roll: moves the token (or applies
// the jail override) and resolves every follow-up effect in the fixed
// order salary, tax/bonus, chance, rent. Chained auto-rolls from
// jail-free card escapes run to completion inside this call.
func (g *Game) MoveAndResolve() (*MoveResult, error) {
	if g.finished {
		return nil, ErrFinished
	}
	if !g.pending {
		return nil, ErrNoRoll
	}
	p := g.current()
	d1, d2 := g.tracker.LastRoll()
	g.pending = false

	res := &MoveResult{D1: d1, D2: d2, From: p.Pos}

	g.chaining = true
	defer func() { g.chaining = false }()

	switch {
	case g.tracker.MustJail():
		// Third consecutive double: the jail override preempts
		// ordinary movement entirely.
		g.tracker.clearMustJail()
		g.tracker.resetDoubles()
		g.sendToJail(p)

	case p.InJail:
		if d1 != d2 {
			res.StayedJailed = true
			res.To = p.Pos
			return res, nil
		}
		g.releaseFromJail(p)
		res.Released = true
		if err := g.applyMove(p, d1, d2, res); err != nil {
			return nil, err
		}

	default:
		if err := g.applyMove(p, d1, d2, res); err != nil {
			return nil, err
		}
	}

	// Explicit loop, not recursion: each jail entry blocked by a
	// jail-free card queues exactly one more free roll+move.
	for g.autoRoll && !g.finished && p.Active {
		g.autoRoll = false
		res.AutoRolls++
		ad1, ad2 := g.roller.Roll(), g.roller.Roll()
		if err := g.applyMove(p, ad1, ad2, res); err != nil {
			return nil, err
		}
	}

	res.To = p.Pos
	res.Jailed = p.InJail
	return res, nil
}

// PlayTurn is the one-call variant: a random roll immediately followed
// by movement and resolution.
func (g *Game) PlayTurn() (*MoveResult, error) {
	if _, _, err := g.Roll(); err != nil {
		return nil, err
	}
	return g.MoveAndResolve()
}

// EndTurn closes the current player's turn and hands the dice over.
func (g *Game) EndTurn() error {
	if g.finished {
		return ErrFinished
	}
	if g.pending || !g.tracker.Rolled() {
		return ErrTurnNotDone
	}
	g.tracker.EndTurn()
	g.landing = landing{pos: -1}
	g.emit(Event{Kind: EventTurn, Player: g.tracker.Current()})
	return nil
}

// Finish ends the match on explicit request.
func (g *Game) Finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.emit(Event{Kind: EventFinished})
}

func (g *Game) current() *Player {
	return g.players[g.tracker.Current()]
}

// applyMove walks the token and resolves the landing. The landing
// context resets every time the token comes to rest on a new cell.
func (g *Game) applyMove(p *Player, d1, d2 int, res *MoveResult) error {
	newPos, crossed, err := Move(p.Pos, d1, d2, g.board.Size())
	if err != nil {
		return err
	}
	p.Pos = newPos
	g.landing = landing{pos: newPos}
	g.emit(Event{Kind: EventMoved, Player: p.ID, Pos: newPos})

	if crossed {
		res.CrossedStart = true
		// A drained bank is a provisioning fault, not gameplay.
		if err := g.bank.PaySalary(p); err != nil {
			return err
		}
		g.emit(Event{Kind: EventSalary, Player: p.ID, Amount: Salary})
	}
	g.resolveLanding(p)
	return nil
}
