package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(1))

	a.Equal(52, d.CardsLeft())

	seen := make(map[Card]bool)
	for _, c := range d.Cards {
		a.False(seen[c], "duplicate card %s", c)
		seen[c] = true
		a.True(c.Rank >= 2 && c.Rank <= Ace)
	}

	a.Len(seen, 52)
}

func TestDeck_Draw(t *testing.T) {
	d := New(rng.NewSeeded(7))

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	drawn := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		assert.NoError(t, err)
		assert.False(t, drawn[card], "card %s drawn twice", card)
		drawn[card] = true
	}

	assert.False(t, d.CanDraw(1))

	card, err := d.Draw()
	assert.Equal(t, Card{}, card)
	assert.Equal(t, ErrEndOfDeck, err)

	d.Reset()
	assert.True(t, d.CanDraw(52))
}

// the draw must reach every remaining card, not only the top of the deck
func TestDeck_DrawIsUniform(t *testing.T) {
	a := assert.New(t)
	gen := rng.NewSeeded(99)
	counts := make(map[Card]int)

	const trials = 5200
	for i := 0; i < trials; i++ {
		d := New(gen)
		card, err := d.Draw()
		a.NoError(err)
		counts[card]++
	}

	a.Len(counts, 52)
	for card, n := range counts {
		// expected 100 per card
		a.True(n > 40 && n < 180, "card %s drawn %d times", card, n)
	}
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(3))

	cards, err := d.DrawN(50)
	a.NoError(err)
	a.Len(cards, 50)
	a.Equal(2, d.CardsLeft())

	cards, err = d.DrawN(3)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(cards)
	a.Equal(2, d.CardsLeft(), "failed DrawN must not consume cards")
}

func TestDeck_RemoveCard(t *testing.T) {
	a := assert.New(t)
	d := New(rng.Crypto{})
	a.True(d.RemoveCard(CardFromString("5s")))
	a.False(d.RemoveCard(CardFromString("5s")))
	a.Equal(51, d.CardsLeft())

	a.True(d.RemoveCard(CardFromString("5c")))
	a.False(d.RemoveCard(CardFromString("5c")))
	a.Equal(50, d.CardsLeft())
}
