package texasholdem

import (
	"fmt"

	"github.com/google/uuid"
)

// Player is a chip ledger for a single player
type Player struct {
	ID   string
	Name string

	stack int
	// committed is what was bet this round, indexed by pot tier
	committed []int
	// potLevel is what was swept into the pots in earlier rounds of this hand
	potLevel int

	folded         bool
	allIn          bool
	paused         bool
	actedThisRound bool
	// inHand is false for players who sat down after the deal
	inHand bool

	buyIns int
}

// NewPlayer returns a new player with the given stack
func NewPlayer(name string, stack int) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Name:  name,
		stack: stack,
	}
}

// Stack returns the chips that have not been wagered
func (p *Player) Stack() int {
	return p.stack
}

// BuyIns returns the number of times the player bought in
func (p *Player) BuyIns() int {
	return p.buyIns
}

// Commit moves amount from the stack into the pot tier
func (p *Player) Commit(tier, amount int) error {
	if amount > p.stack {
		return fmt.Errorf("%w: %d > %d", ErrInsufficientChips, amount, p.stack)
	}

	if tier < 0 || tier >= len(p.committed) {
		return fmt.Errorf("no pot tier %d", tier)
	}

	p.stack -= amount
	p.committed[tier] += amount
	return nil
}

// AddChips credits winnings to the stack
func (p *Player) AddChips(amount int) {
	p.stack += amount
}

// BuyIn restocks the player to minBuyIn
func (p *Player) BuyIn(minBuyIn int) {
	p.stack = minBuyIn
	p.buyIns++
}

// RoundBet is what the player has bet this round
func (p *Player) RoundBet() int {
	total := 0
	for _, amount := range p.committed {
		total += amount
	}

	return total
}

// HandTotal is what the player has put in this hand
func (p *Player) HandTotal() int {
	return p.potLevel + p.RoundBet()
}

// ResetForNextHand clears the per-hand flags, the stack is untouched
func (p *Player) ResetForNextHand(tiers int) {
	p.folded = false
	p.allIn = false
	p.actedThisRound = false
	p.paused = false
	p.inHand = true
	p.potLevel = 0
	p.committed = make([]int, tiers)
}

// sweep clears the round bets and returns them
func (p *Player) sweep() []int {
	bets := p.committed
	p.potLevel += p.RoundBet()
	p.committed = make([]int, len(bets))
	p.actedThisRound = false

	return bets
}

func (p *Player) canAct() bool {
	return p.inHand && !p.paused && !p.folded && !p.allIn
}

func (p *Player) isContesting() bool {
	return p.inHand && !p.folded
}
