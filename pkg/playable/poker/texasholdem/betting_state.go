package texasholdem

import (
	"encoding/json"
	"strings"
)

// BettingState represents where the table is in a hand
type BettingState int

// constants for BettingState
const (
	PreDeal BettingState = iota
	PreFlop
	Flop
	Turn
	River
)

func (b BettingState) String() string {
	switch b {
	case PreDeal:
		return "pre-deal"
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	}

	return ""
}

// title is the state name for the start of a sentence
func (b BettingState) title() string {
	s := b.String()
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// communityCards is the number of community cards dealt once the state is reached
func (b BettingState) communityCards() int {
	switch b {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	}

	return 0
}

// MarshalJSON encodes JSON
func (b BettingState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(b),
		Name: b.String(),
	})
}
