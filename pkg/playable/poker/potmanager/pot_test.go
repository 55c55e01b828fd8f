package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTiers(t *testing.T) {
	a := assert.New(t)

	l := BuildTiers(map[int]int{0: 100, 1: 300, 2: 300}, 0)
	a.Equal(2, l.Len())
	a.Equal(300, l.MaximumBet())

	pots := l.Pots()
	a.Equal(100, pots[0].Cap)
	a.Equal([]int{0, 1, 2}, pots[0].EligibleSeats())
	a.Equal(300, pots[1].Cap)
	a.Equal([]int{1, 2}, pots[1].EligibleSeats())
}

func TestBuildTiers_discardsUnmatchedStack(t *testing.T) {
	a := assert.New(t)

	l := BuildTiers(map[int]int{0: 300, 3: 1000, 5: 300}, 15)
	a.Equal(1, l.Len())
	a.Equal(300, l.MaximumBet())
	a.Equal(15, l.Total())

	pots := l.Pots()
	a.Equal([]int{0, 3, 5}, pots[0].EligibleSeats())
}

func TestBuildTiers_skipsEmptyStacks(t *testing.T) {
	a := assert.New(t)

	l := BuildTiers(map[int]int{0: 0, 1: 200, 2: 200}, 0)
	a.Equal(1, l.Len())
	a.Equal([]int{1, 2}, l.Pots()[0].EligibleSeats())

	l = BuildTiers(map[int]int{}, 5)
	a.Equal(1, l.Len())
	a.Equal(0, l.MaximumBet())
	a.Equal(5, l.Total())
}

func TestLedger_Allocate(t *testing.T) {
	a := assert.New(t)

	l := BuildTiers(map[int]int{0: 100, 1: 300, 2: 300}, 0)

	alloc, placed := l.Allocate(0, 50)
	a.Equal([]int{50, 0}, alloc)
	a.Equal(50, placed)

	// crosses the first cap
	alloc, placed = l.Allocate(50, 100)
	a.Equal([]int{50, 50}, alloc)
	a.Equal(100, placed)

	// already past the first cap
	alloc, placed = l.Allocate(120, 30)
	a.Equal([]int{0, 30}, alloc)
	a.Equal(30, placed)

	// clamped at the maximum bet
	alloc, placed = l.Allocate(250, 100)
	a.Equal([]int{0, 50}, alloc)
	a.Equal(50, placed)
}

func TestLedger_SweepAndFold(t *testing.T) {
	a := assert.New(t)

	l := BuildTiers(map[int]int{0: 100, 1: 300, 2: 300}, 10)
	a.NoError(l.Sweep([]int{100, 0}))
	a.NoError(l.Sweep([]int{100, 200}))
	a.NoError(l.Sweep([]int{100}))
	a.ErrorIs(l.Sweep([]int{1, 2, 3}), ErrTierMismatch)

	a.Equal(510, l.Total())
	pots := l.Pots()
	a.Equal(310, pots[0].Amount)
	a.Equal(200, pots[1].Amount)

	l.Fold(1)
	pots = l.Pots()
	a.Equal([]int{0, 2}, pots[0].EligibleSeats())
	a.Equal([]int{2}, pots[1].EligibleSeats())

	// the copy does not affect the ledger
	delete(pots[0].Eligible, 0)
	a.Equal([]int{0, 2}, l.Pots()[0].EligibleSeats())
}

func TestLedger_Payable(t *testing.T) {
	a := assert.New(t)

	l := BuildTiers(map[int]int{0: 100, 1: 200, 2: 300, 3: 300}, 0)
	a.Equal(3, l.Len())
	a.NoError(l.Sweep([]int{100, 100, 100}))
	a.NoError(l.Sweep([]int{100, 100, 50}))
	a.NoError(l.Sweep([]int{100, 0, 0}))
	a.NoError(l.Sweep([]int{100, 0, 0}))

	// both players who could reach the top tier fold
	l.Fold(2)
	l.Fold(3)

	payable := l.Payable()
	if a.Len(payable, 2) {
		a.Equal(400, payable[0].Amount)
		a.Equal([]int{0, 1}, payable[0].EligibleSeats())
		a.Equal(350, payable[1].Amount)
		a.Equal([]int{1}, payable[1].EligibleSeats())
	}

	total := 0
	for _, p := range payable {
		total += p.Amount
	}
	a.Equal(l.Total(), total)
}

func TestSplit(t *testing.T) {
	a := assert.New(t)

	assertSplit := func(amount, winners, unit, expShare, expLeftover int) {
		t.Helper()
		share, leftover := Split(amount, winners, unit)
		a.Equal(expShare, share)
		a.Equal(expLeftover, leftover)
		a.Equal(amount, share*winners+leftover)
	}

	assertSplit(100, 1, 5, 100, 0)
	assertSplit(100, 2, 5, 50, 0)
	assertSplit(105, 2, 5, 50, 5)
	assertSplit(100, 3, 5, 30, 10)
	assertSplit(7, 2, 5, 1, 5)
	assertSplit(3, 2, 5, 0, 3)
	assertSplit(50, 0, 5, 0, 50)
}

func TestWinManager(t *testing.T) {
	a := assert.New(t)

	w := NewWinManager()
	w.AddSeat(0, 100)
	w.AddSeat(4, 300)
	w.AddSeat(2, 300)
	w.AddSeat(7, 200)

	a.Equal([][]int{{2, 4}, {7}, {0}}, w.GetSortedTiers())
	a.Equal([]int{2, 4}, w.Winners(map[int]bool{0: true, 2: true, 4: true}))
	a.Equal([]int{7}, w.Winners(map[int]bool{0: true, 7: true}))
	a.Nil(w.Winners(map[int]bool{9: true}))
}
