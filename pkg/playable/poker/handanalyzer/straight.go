package handanalyzer

import "holdem-server/pkg/deck"

// straightHigh returns the high card of a straight made by exactly five distinct ranks.
// Ranks must be sorted highest first. The wheel (A-2-3-4-5) returns 5.
// Returns 0 if the ranks are not a straight.
func straightHigh(ranks []int) int {
	if len(ranks) != 5 {
		return 0
	}

	for i := 1; i < 5; i++ {
		if ranks[i] == ranks[i-1] {
			return 0
		}
	}

	if ranks[0]-ranks[4] == 4 {
		return ranks[0]
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[4] == 2 {
		return 5
	}

	return 0
}
