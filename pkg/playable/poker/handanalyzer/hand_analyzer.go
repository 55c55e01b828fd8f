package handanalyzer

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"holdem-server/pkg/deck"
)

// ErrNotEnoughCards happens when the evaluator is not given two hole cards and five community cards
var ErrNotEnoughCards = errors.New("hand evaluation requires 7 cards")

// Result is the outcome of comparing two hands
type Result int

// Result constants
const (
	Worse Result = iota - 1
	Equal
	Better
)

func (r Result) String() string {
	switch r {
	case Worse:
		return "worse"
	case Equal:
		return "equal"
	case Better:
		return "better"
	}

	return fmt.Sprintf("Result(%d)", int(r))
}

// HandAnalyzer holds the best five card hand that can be made from seven cards
type HandAnalyzer struct {
	hand Hand
	// tieBreak is compared element-wise when two hands share a category
	tieBreak []int
	cards    deck.Hand
}

// Evaluate returns the best hand for the hole cards and the community cards
func Evaluate(hole, community []deck.Card) (*HandAnalyzer, error) {
	cards := make([]deck.Card, 0, 7)
	cards = append(cards, hole...)
	cards = append(cards, community...)

	return New(cards)
}

// New will return the best hand that can be made from exactly seven cards.
// Every five card subset is scored by choosing which two cards to leave out.
func New(cards []deck.Card) (*HandAnalyzer, error) {
	if len(cards) != 7 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughCards, len(cards))
	}

	var best *HandAnalyzer
	var subset [5]deck.Card
	for skip1 := 0; skip1 < 6; skip1++ {
		for skip2 := skip1 + 1; skip2 < 7; skip2++ {
			j := 0
			for i, card := range cards {
				if i != skip1 && i != skip2 {
					subset[j] = card
					j++
				}
			}

			h := analyzeFive(subset)
			if best == nil || Compare(h, best) == Better {
				best = h
			}
		}
	}

	return best, nil
}

// analyzeFive scores exactly five cards
func analyzeFive(five [5]deck.Card) *HandAnalyzer {
	cards := make(deck.Hand, 5)
	copy(cards, five[:])
	ranks := cards.Ranks()

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	high := straightHigh(ranks)

	h := &HandAnalyzer{cards: sortForDisplay(cards, high == 5)}
	switch {
	case high > 0 && flush && high == deck.Ace:
		h.hand = RoyalFlush
		h.tieBreak = []int{high}
		return h
	case high > 0 && flush:
		h.hand = StraightFlush
		h.tieBreak = []int{high}
		return h
	}

	// histogram of ranks 2-14
	var histogram [13]int
	for _, r := range ranks {
		histogram[r-2]++
	}

	// group ranks by frequency, highest rank first within each group
	var quads, trips, pairs, singles []int
	for r := deck.Ace; r >= 2; r-- {
		switch histogram[r-2] {
		case 4:
			quads = append(quads, r)
		case 3:
			trips = append(trips, r)
		case 2:
			pairs = append(pairs, r)
		case 1:
			singles = append(singles, r)
		}
	}

	switch {
	case len(quads) == 1:
		h.hand = FourOfAKind
		h.tieBreak = []int{quads[0], singles[0]}
	case len(trips) == 1 && len(pairs) == 1:
		h.hand = FullHouse
		h.tieBreak = []int{trips[0], pairs[0]}
	case flush:
		h.hand = Flush
		h.tieBreak = ranks
	case high > 0:
		h.hand = Straight
		h.tieBreak = []int{high}
	case len(trips) == 1:
		h.hand = ThreeOfAKind
		h.tieBreak = append([]int{trips[0]}, singles...)
	case len(pairs) == 2:
		h.hand = TwoPair
		h.tieBreak = []int{pairs[0], pairs[1], singles[0]}
	case len(pairs) == 1:
		h.hand = OnePair
		h.tieBreak = append([]int{pairs[0]}, singles...)
	default:
		h.hand = HighCard
		h.tieBreak = ranks
	}

	return h
}

// sortForDisplay orders the cards highest first; a wheel puts the ace last
func sortForDisplay(cards deck.Hand, wheel bool) deck.Hand {
	rank := func(c deck.Card) int {
		if wheel {
			return c.AceLowRank()
		}

		return c.Rank
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return rank(cards[i]) > rank(cards[j])
	})

	return cards
}

// Compare returns Better if a beats b, Worse if b beats a, and Equal for a split
func Compare(a, b *HandAnalyzer) Result {
	if a.hand != b.hand {
		if a.hand > b.hand {
			return Better
		}

		return Worse
	}

	for i := 0; i < len(a.tieBreak) && i < len(b.tieBreak); i++ {
		if a.tieBreak[i] > b.tieBreak[i] {
			return Better
		} else if a.tieBreak[i] < b.tieBreak[i] {
			return Worse
		}
	}

	return Equal
}

// GetHand will return the category of the best hand
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// TieBreak returns the ranks used to break ties within the category
func (h *HandAnalyzer) TieBreak() []int {
	tb := make([]int, len(h.tieBreak))
	copy(tb, h.tieBreak)
	return tb
}

// Cards returns the five cards that make the hand
func (h *HandAnalyzer) Cards() deck.Hand {
	return h.cards.Clone()
}

// GetStrength returns a single number that orders hands the same way Compare does
func (h *HandAnalyzer) GetStrength() int {
	return calculateStrength(h.hand, h.tieBreak)
}

func calculateStrength(hand Hand, ranks []int) int {
	fiveCards := make([]int, 5)
	copy(fiveCards, ranks)

	strength := math.Pow(15, 5) * float64(hand)
	for i := 0; i < 5; i++ {
		val := fiveCards[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

func (h *HandAnalyzer) String() string {
	var b strings.Builder
	b.WriteString(h.hand.String())
	b.WriteString(" (")
	b.WriteString(h.cards.String())
	b.WriteString(")")

	return b.String()
}
