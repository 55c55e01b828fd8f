package texasholdem

import (
	"fmt"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/potmanager"
)

// MaxSeats is the number of seats at the table
const MaxSeats = 10

// Table tracks seating, turn order, blinds and the pot tiers
type Table struct {
	seats [MaxSeats]*Player

	// dealerSeat and actingSeat are -1 when undefined
	dealerSeat int
	actingSeat int

	smallBlindSeat int
	bigBlindSeat   int

	community deck.Hand
	state     BettingState

	currentBet   int
	minRaiseStep int

	smallBlind int
	bigBlind   int
	minBuyIn   int

	pots *potmanager.Ledger
}

// NewTable returns an empty table
func NewTable(smallBlind, bigBlind, minBuyIn int) *Table {
	return &Table{
		dealerSeat:     -1,
		actingSeat:     -1,
		smallBlindSeat: -1,
		bigBlindSeat:   -1,
		community:      make(deck.Hand, 0, 5),
		state:          PreDeal,
		minRaiseStep:   bigBlind,
		smallBlind:     smallBlind,
		bigBlind:       bigBlind,
		minBuyIn:       minBuyIn,
		pots:           potmanager.NewLedger(0),
	}
}

// SitPlayer places the player in the first empty seat
func (t *Table) SitPlayer(p *Player) (int, error) {
	for seat, sp := range t.seats {
		if sp != nil {
			continue
		}

		t.seats[seat] = p
		if t.dealerSeat == -1 {
			t.dealerSeat = seat
		}

		return seat, nil
	}

	return -1, UserError("the table is full")
}

// IsFull returns true if every seat is taken
func (t *Table) IsFull() bool {
	for _, p := range t.seats {
		if p == nil {
			return false
		}
	}

	return true
}

// SeatOf returns the seat of the named player or -1
func (t *Table) SeatOf(name string) int {
	for seat, p := range t.seats {
		if p != nil && p.Name == name {
			return seat
		}
	}

	return -1
}

// IsSeated returns true if the named player has a seat
func (t *Table) IsSeated(name string) bool {
	return t.SeatOf(name) >= 0
}

// IsDealer returns true if the named player holds the button
func (t *Table) IsDealer(name string) bool {
	seat := t.SeatOf(name)
	return seat >= 0 && seat == t.dealerSeat
}

// IsActingSeat returns true if it is the named player's turn
func (t *Table) IsActingSeat(name string) bool {
	seat := t.SeatOf(name)
	return seat >= 0 && seat == t.actingSeat
}

// Player returns the player at the seat
func (t *Table) Player(seat int) (*Player, error) {
	if seat < 0 || seat >= MaxSeats || t.seats[seat] == nil {
		return nil, fmt.Errorf("%w: %d", ErrSeatEmpty, seat)
	}

	return t.seats[seat], nil
}

// NextActiveSeat walks the seats after from and returns the first one that can act
// If no other seat can act, from is returned
func (t *Table) NextActiveSeat(from int) int {
	for i := 1; i <= MaxSeats; i++ {
		seat := (from + i + MaxSeats) % MaxSeats
		if seat == from {
			break
		}

		if p := t.seats[seat]; p != nil && p.canAct() {
			return seat
		}
	}

	return from
}

// moveButton passes the button to the next seat whose player can play the next hand
func (t *Table) moveButton() {
	for i := 1; i <= MaxSeats; i++ {
		seat := (t.dealerSeat + i + MaxSeats) % MaxSeats
		if p := t.seats[seat]; p != nil && !p.paused && p.stack > 0 {
			t.dealerSeat = seat
			return
		}
	}

	// nobody can play, keep the button with someone who can buy in
	for i := 1; i <= MaxSeats; i++ {
		seat := (t.dealerSeat + i + MaxSeats) % MaxSeats
		if t.seats[seat] != nil {
			t.dealerSeat = seat
			return
		}
	}

	t.dealerSeat = -1
}

// vacate removes the player from the seat
func (t *Table) vacate(seat int) {
	t.seats[seat] = nil
	if t.actingSeat == seat && t.state == PreDeal {
		t.actingSeat = -1
	}
}

// contesters counts the players who have not folded
func (t *Table) contesters() []int {
	seats := make([]int, 0, MaxSeats)
	for seat, p := range t.seats {
		if p != nil && p.isContesting() {
			seats = append(seats, seat)
		}
	}

	return seats
}

// actors counts the players who can still bet
func (t *Table) actors() []int {
	seats := make([]int, 0, MaxSeats)
	for seat, p := range t.seats {
		if p != nil && p.canAct() {
			seats = append(seats, seat)
		}
	}

	return seats
}

// eligibleForDeal returns the seats whose players can cover the big blind
func (t *Table) eligibleForDeal() []int {
	seats := make([]int, 0, MaxSeats)
	for seat, p := range t.seats {
		if p != nil && p.stack >= t.bigBlind {
			seats = append(seats, seat)
		}
	}

	return seats
}

// TotalChips returns every chip on the table, in stacks, in bets and in the pots
func (t *Table) TotalChips() int {
	total := t.pots.Total()
	for _, p := range t.seats {
		if p != nil {
			total += p.stack + p.RoundBet()
		}
	}

	return total
}
