package deck

import "sort"

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Ranks returns the ranks of the cards, highest first
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

func (h Hand) String() string {
	s := ""
	for i, c := range h {
		if i > 0 {
			s += " "
		}

		s += c.String()
	}

	return s
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
