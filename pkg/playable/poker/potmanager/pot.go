package potmanager

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTierMismatch is returned when a bet slice does not line up with the pot tiers
var ErrTierMismatch = errors.New("bets do not match pot tiers")

// Pot is a single tier of the pot
// A player commits chips to a tier until their hand total reaches Cap
type Pot struct {
	Cap    int `json:"cap"`
	Amount int `json:"amount"`

	// Eligible is keyed by seat and only ever shrinks
	Eligible map[int]bool `json:"-"`
}

// EligibleSeats returns the eligible seats in ascending order
func (p *Pot) EligibleSeats() []int {
	seats := make([]int, 0, len(p.Eligible))
	for seat := range p.Eligible {
		seats = append(seats, seat)
	}

	sort.Ints(seats)
	return seats
}

func (p *Pot) clone() *Pot {
	eligible := make(map[int]bool, len(p.Eligible))
	for seat := range p.Eligible {
		eligible[seat] = true
	}

	return &Pot{
		Cap:      p.Cap,
		Amount:   p.Amount,
		Eligible: eligible,
	}
}

// Ledger keeps track of the pot tiers for a single hand
type Ledger struct {
	pots []*Pot

	// maximumBet is the most any one player may commit this hand
	maximumBet int
}

// NewLedger returns an empty ledger with a single pot seeded with leftover chips
func NewLedger(leftover int) *Ledger {
	return &Ledger{
		pots: []*Pot{{Amount: leftover, Eligible: map[int]bool{}}},
	}
}

// BuildTiers opens one tier for every distinct stack in stacks (keyed by seat)
// A tier that only one player can reach is discarded and the tier below it becomes the ceiling
// The first tier is seeded with leftover.
func BuildTiers(stacks map[int]int, leftover int) *Ledger {
	values := make([]int, 0, len(stacks))
	seen := make(map[int]bool)
	for _, stack := range stacks {
		if stack <= 0 || seen[stack] {
			continue
		}

		seen[stack] = true
		values = append(values, stack)
	}

	sort.Ints(values)

	l := &Ledger{}
	for _, v := range values {
		eligible := make(map[int]bool)
		for seat, stack := range stacks {
			if stack >= v {
				eligible[seat] = true
			}
		}

		if len(eligible) < 2 {
			break
		}

		l.pots = append(l.pots, &Pot{Cap: v, Eligible: eligible})
		l.maximumBet = v
	}

	if len(l.pots) == 0 {
		return NewLedger(leftover)
	}

	l.pots[0].Amount = leftover
	return l
}

// MaximumBet returns the most chips one player may commit this hand
func (l *Ledger) MaximumBet() int {
	return l.maximumBet
}

// Len returns the number of tiers
func (l *Ledger) Len() int {
	return len(l.pots)
}

// Pots returns a copy of the tiers
func (l *Ledger) Pots() []*Pot {
	pots := make([]*Pot, len(l.pots))
	for i, p := range l.pots {
		pots[i] = p.clone()
	}

	return pots
}

// Total returns the number of chips swept into the pots
func (l *Ledger) Total() int {
	total := 0
	for _, p := range l.pots {
		total += p.Amount
	}

	return total
}

// Allocate splits amount across the tiers for a player who has already committed handTotal this hand
// The returned slice is indexed by tier. The second value is how much of amount was placed; anything
// beyond the maximum bet is not placed.
func (l *Ledger) Allocate(handTotal, amount int) ([]int, int) {
	alloc := make([]int, len(l.pots))
	placed := 0
	for i, p := range l.pots {
		if amount == 0 {
			break
		}

		if handTotal >= p.Cap {
			continue
		}

		room := p.Cap - handTotal
		if amount <= room {
			alloc[i] += amount
			placed += amount
			handTotal += amount
			amount = 0
			break
		}

		alloc[i] += room
		placed += room
		handTotal += room
		amount -= room
	}

	return alloc, placed
}

// Sweep moves a player's round bets into the pots
func (l *Ledger) Sweep(bets []int) error {
	if len(bets) > len(l.pots) {
		return fmt.Errorf("%w: %d bets for %d tiers", ErrTierMismatch, len(bets), len(l.pots))
	}

	for i, amount := range bets {
		l.pots[i].Amount += amount
	}

	return nil
}

// Fold removes a seat from every tier
func (l *Ledger) Fold(seat int) {
	for _, p := range l.pots {
		delete(p.Eligible, seat)
	}
}

// Payable returns the tiers that can be awarded
// A tier nobody is eligible for anymore is merged into the highest tier below it that still has
// an eligible seat. The ledger itself is not modified.
func (l *Ledger) Payable() []*Pot {
	pots := l.Pots()
	payable := make([]*Pot, 0, len(pots))
	orphaned := 0
	for i := len(pots) - 1; i >= 0; i-- {
		p := pots[i]
		if len(p.Eligible) == 0 {
			orphaned += p.Amount
			continue
		}

		p.Amount += orphaned
		orphaned = 0
		payable = append(payable, p)
	}

	// nobody left at all, keep the chips in the bottom tier
	if orphaned > 0 {
		payable = append(payable, &Pot{Amount: orphaned, Eligible: map[int]bool{}})
	}

	// back to ascending
	for i, j := 0, len(payable)-1; i < j; i, j = i+1, j-1 {
		payable[i], payable[j] = payable[j], payable[i]
	}

	return payable
}
