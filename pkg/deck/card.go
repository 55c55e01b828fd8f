package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card code cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
)

// Suits lists every suit
var Suits = []Suit{Spades, Diamonds, Hearts, Clubs}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

// Card is an individual playing card. Cards are values and never mutated.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack   = 11
	Queen  = 12
	King   = 13
	Ace    = 14
	LowAce = 1
)

func (c Card) String() string {
	return rankString(c.Rank) + c.Suit.Symbol()
}

func rankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(rank)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return Card{
		Rank: rank,
		Suit: suitFromLetter(match[2]),
	}
}

func suitFromLetter(s string) Suit {
	switch strings.ToLower(s) {
	case "c":
		return Clubs
	case "d":
		return Diamonds
	case "h":
		return Hearts
	case "s":
		return Spades
	}

	return ""
}

// CardsFromString will returns a slice of cards from a string like 2c,3h,14s
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// ParseShortCode parses a two character code like "3D", "TS", "0H" or "AC".
// Both 0 and T mean ten.
func ParseShortCode(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}

	code = strings.ToUpper(code)

	var rank int
	switch r := code[0]; r {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = int(r - '0')
	case '0', 'T':
		rank = 10
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}

	suit := suitFromLetter(code[1:])
	if suit == "" {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	return fmt.Sprintf("%d%s", card.Rank, string(card.Suit)[0:1])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
