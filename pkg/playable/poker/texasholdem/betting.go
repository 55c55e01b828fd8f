package texasholdem

import (
	"fmt"

	"holdem-server/pkg/playable/poker/potmanager"
)

// nextHand starts a hand with the players who can cover the big blind
// leftover chips from the previous hand seed the first pot
func (t *Table) nextHand(leftover int) error {
	t.community = t.community[:0]
	t.state = PreFlop

	stacks := make(map[int]int)
	for seat, p := range t.seats {
		if p == nil {
			continue
		}

		if p.stack < t.bigBlind {
			p.paused = true
			p.inHand = false
			continue
		}

		stacks[seat] = p.stack
	}

	t.pots = potmanager.BuildTiers(stacks, leftover)
	for seat := range stacks {
		t.seats[seat].ResetForNextHand(t.pots.Len())
	}

	t.smallBlindSeat = t.NextActiveSeat(t.dealerSeat)
	t.bigBlindSeat = t.NextActiveSeat(t.smallBlindSeat)

	sb, err := t.Player(t.smallBlindSeat)
	if err != nil {
		return err
	}

	bb, err := t.Player(t.bigBlindSeat)
	if err != nil {
		return err
	}

	if _, err := t.allocateBet(sb, t.smallBlind); err != nil {
		return err
	}

	if _, err := t.allocateBet(bb, t.bigBlind); err != nil {
		return err
	}

	t.currentBet = t.bigBlind
	t.minRaiseStep = t.bigBlind
	t.actingSeat = t.NextActiveSeat(t.bigBlindSeat)

	return nil
}

// allocateBet moves amount from the player's stack into the pot tiers
// Anything beyond the maximum bet stays in the stack and the player is all in
func (t *Table) allocateBet(p *Player, amount int) (int, error) {
	if amount > p.stack {
		amount = p.stack
	}

	alloc, placed := t.pots.Allocate(p.HandTotal(), amount)
	if len(alloc) != len(p.committed) {
		return 0, fmt.Errorf("%w: player has %d tiers, table has %d", potmanager.ErrTierMismatch, len(p.committed), len(alloc))
	}

	for tier, a := range alloc {
		if a == 0 {
			continue
		}

		if err := p.Commit(tier, a); err != nil {
			return 0, err
		}
	}

	if p.stack == 0 || p.HandTotal() >= t.pots.MaximumBet() {
		p.allIn = true
	}

	return placed, nil
}

// call settles the player's shortfall against the current bet
// With nothing to call it is a check
func (t *Table) call(p *Player) (int, error) {
	shortfall := t.currentBet - p.RoundBet()
	if shortfall <= 0 {
		p.actedThisRound = true
		return 0, nil
	}

	placed, err := t.allocateBet(p, shortfall)
	if err != nil {
		return 0, err
	}

	p.actedThisRound = true
	return placed, nil
}

// check marks the player as having acted
func (t *Table) check(p *Player) error {
	if p.RoundBet() != t.currentBet {
		return newUserError("cannot check, the bet is %d", t.currentBet)
	}

	p.actedThisRound = true
	return nil
}

// raise sets the player's total bet for the round to n
// It returns the bet after any clamp to the maximum bet
func (t *Table) raise(p *Player, n int) (int, error) {
	roundBet := p.RoundBet()
	if n > roundBet+p.stack {
		return 0, newUserError("cannot raise to %d with %d in front and %d behind", n, roundBet, p.stack)
	}

	if n%t.smallBlind != 0 {
		return 0, newUserError("raise must be a multiple of %d", t.smallBlind)
	}

	allIn := n == roundBet+p.stack
	clamped := false
	if maxRound := t.pots.MaximumBet() - p.potLevel; n >= maxRound {
		if n > maxRound {
			n = maxRound
			clamped = true
		}

		allIn = true
	}

	if n <= t.currentBet {
		if clamped {
			return 0, UserError("no further raise possible")
		}

		return 0, newUserError("raise must be more than the current bet of %d", t.currentBet)
	}

	if minRaise := t.currentBet + t.minRaiseStep; !allIn && n < minRaise {
		return 0, newUserError("raise must be at least %d", minRaise)
	}

	if _, err := t.allocateBet(p, n-roundBet); err != nil {
		return 0, err
	}

	if step := n - t.currentBet; step > t.minRaiseStep {
		t.minRaiseStep = step
	}

	t.currentBet = n
	for _, other := range t.seats {
		if other != nil && other != p {
			other.actedThisRound = false
		}
	}

	p.actedThisRound = true
	return n, nil
}

// fold forfeits the player's claim on every pot
func (t *Table) fold(seat int, p *Player) {
	p.folded = true
	t.pots.Fold(seat)
}

// advanceActor returns true once nobody else needs to act this round
// It reports a settled round once; the acting seat is cleared after that
func (t *Table) advanceActor() (bool, error) {
	if t.actingSeat < 0 {
		return false, ErrRoundSettled
	}

	next := t.NextActiveSeat(t.actingSeat)
	if next == t.actingSeat || t.seats[next].actedThisRound {
		t.actingSeat = -1
		return true, nil
	}

	t.actingSeat = next
	return false, nil
}

// endBettingRound sweeps every bet into the pots and hands the action to the seat after the dealer
func (t *Table) endBettingRound() error {
	for _, p := range t.seats {
		if p != nil && p.inHand && len(p.committed) != t.pots.Len() {
			return fmt.Errorf("%w: %s has %d tiers, table has %d", potmanager.ErrTierMismatch, p.Name, len(p.committed), t.pots.Len())
		}
	}

	for _, p := range t.seats {
		if p == nil || !p.inHand {
			continue
		}

		if err := t.pots.Sweep(p.sweep()); err != nil {
			return err
		}
	}

	t.currentBet = 0
	t.minRaiseStep = t.bigBlind
	t.actingSeat = t.NextActiveSeat(t.dealerSeat)

	return nil
}

// endHand resets the table for the next deal
func (t *Table) endHand(leftover int) {
	t.state = PreDeal
	t.actingSeat = -1
	t.currentBet = 0
	t.minRaiseStep = t.bigBlind
	t.pots = potmanager.NewLedger(leftover)
	for _, p := range t.seats {
		if p != nil {
			p.committed = nil
			p.potLevel = 0
		}
	}

	t.moveButton()
}
