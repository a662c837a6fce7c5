package engine

import "fmt"

// Salary paid whenever a player's token crosses the start cell.
const Salary = 200

// DefaultBankFunds is deliberately far above any payout total a 6
// player match can produce.
const DefaultBankFunds = 100000

// Bank is the shared fund pool. Player payments flow into it, salaries
// and bonuses flow out.
type Bank struct {
	balance int
}

func NewBank(funds int) *Bank {
	return &Bank{balance: funds}
}

func (b *Bank) Balance() int { return b.balance }

func (b *Bank) Credit(amount int) error {
	if amount < 0 {
		return ErrNegative
	}
	b.balance += amount
	return nil
}

func (b *Bank) Debit(amount int) error {
	if amount < 0 {
		return ErrNegative
	}
	b.balance -= amount
	return nil
}

// PaySalary moves the fixed cross-start salary to the player. Failing
// funds here means the match was provisioned wrong.
func (b *Bank) PaySalary(p *Player) error {
	if b.balance < Salary {
		return fmt.Errorf("%w: salary of %d with %d in the pool", ErrBankDrained, Salary, b.balance)
	}
	b.balance -= Salary
	p.Balance += Salary
	return nil
}

func (b *Bank) setBalance(v int) { b.balance = v }
