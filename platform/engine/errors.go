package engine

import "errors"

// Illegal-state errors: the call arrived at the wrong point of the
// turn cycle. The engine never retries these and never applies a
// partial mutation before rejecting.
var (
	ErrFinished      = errors.New("match is already over")
	ErrAlreadyRolled = errors.New("dice already rolled this turn")
	ErrMovePending   = errors.New("previous roll has not been moved yet")
	ErrNoRoll        = errors.New("no roll to move with")
	ErrTurnNotDone   = errors.New("roll and move before ending the turn")
	ErrNotInJail     = errors.New("player is not in jail")
)

// Illegal-argument errors: rejected at the call boundary.
var (
	ErrPlayerCount  = errors.New("player count must be between 2 and 6")
	ErrDie          = errors.New("die value must be between 1 and 6")
	ErrNoSuchCell   = errors.New("no such board position")
	ErrNoSuchPlayer = errors.New("no such player id")
	ErrNegative     = errors.New("amount must not be negative")
)

// Purchase and construction rejections.
var (
	ErrNotOwnable     = errors.New("cell has no purchasable asset")
	ErrAlreadyOwned   = errors.New("asset already has an owner")
	ErrNotOwner       = errors.New("asset is not owned by this player")
	ErrCannotAfford   = errors.New("balance does not cover the price")
	ErrNotOnAsset     = errors.New("player is not standing on the asset")
	ErrBoughtThisStop = errors.New("already bought on this landing")
	ErrBuiltThisStop  = errors.New("already built on this landing")
	ErrNoJailCard     = errors.New("player holds no jail-free card")
)

// ErrBankDrained signals the bank could not cover a fixed payout. The
// pool is provisioned far above any plausible payout total, so this is
// a configuration fault, not a gameplay path.
var ErrBankDrained = errors.New("bank cannot cover payout")

// ErrBadSnapshot covers internally inconsistent snapshots on import.
var ErrBadSnapshot = errors.New("snapshot is inconsistent")
