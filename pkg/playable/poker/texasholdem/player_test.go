package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_Commit(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("Alice", 100)
	a.NotEmpty(p.ID)
	p.ResetForNextHand(2)

	a.NoError(p.Commit(0, 40))
	a.NoError(p.Commit(1, 20))
	a.Equal(40, p.Stack())
	a.Equal(60, p.RoundBet())
	a.Equal(60, p.HandTotal())

	a.ErrorIs(p.Commit(0, 41), ErrInsufficientChips)
	a.Error(p.Commit(2, 10))
	a.Equal(40, p.Stack())

	bets := p.sweep()
	a.Equal([]int{40, 20}, bets)
	a.Equal(0, p.RoundBet())
	a.Equal(60, p.HandTotal())

	p.AddChips(15)
	a.Equal(55, p.Stack())
}

func TestPlayer_ResetForNextHand(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("Alice", 100)
	p.folded = true
	p.allIn = true
	p.actedThisRound = true
	p.paused = true
	p.potLevel = 50

	p.ResetForNextHand(3)
	a.False(p.folded)
	a.False(p.allIn)
	a.False(p.actedThisRound)
	a.False(p.paused)
	a.True(p.inHand)
	a.Equal(0, p.HandTotal())
	a.Len(p.committed, 3)
	a.Equal(100, p.Stack())
}

func TestPlayer_BuyIn(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("Alice", 20)
	p.BuyIn(500)
	a.Equal(500, p.Stack())
	a.Equal(1, p.BuyIns())
}
