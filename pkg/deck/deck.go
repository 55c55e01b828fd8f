package deck

import (
	"errors"

	"holdem-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck
const Size = 52

// Deck is the multiset of cards that have not been drawn yet.
// The order of Cards carries no meaning; Draw picks uniformly from what remains.
type Deck struct {
	Cards []Card `json:"-"`
	gen   rng.Generator
}

// New returns a full deck of 52 cards that draws with gen
func New(gen rng.Generator) *Deck {
	d := &Deck{gen: gen}
	d.Reset()
	return d
}

// Reset puts all 52 cards back into the deck
func (d *Deck) Reset() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Draw removes and returns a card chosen uniformly at random from the remaining cards.
// If there are no more cards, ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return Card{}, ErrEndOfDeck
	}

	i := d.gen.Intn(n)
	card := d.Cards[i]
	d.Cards[i] = d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// DrawN draws n cards. Either all n cards are drawn or the deck is left untouched.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := make([]Card, n)
	for i := range cards {
		card, err := d.Draw()
		if err != nil {
			// unreachable, CanDraw was checked
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// RemoveCard takes a specific card out of the deck. Returns false if the card was already drawn.
func (d *Deck) RemoveCard(card Card) bool {
	for i, c := range d.Cards {
		if c.Equal(card) {
			n := len(d.Cards)
			d.Cards[i] = d.Cards[n-1]
			d.Cards = d.Cards[:n-1]
			return true
		}
	}

	return false
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
