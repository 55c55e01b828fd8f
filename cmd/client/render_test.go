package main

import (
	"encoding/json"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestRenderState(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	a := assert.New(t)

	raw := `{
		"table": {
			"seats": [
				{"seat": 0, "name": "Alice", "stack": 490, "bet": 10},
				{"seat": 1, "name": "Bob", "stack": 495, "bet": 5, "folded": true},
				null
			],
			"dealerSeat": 1,
			"actingSeat": 0,
			"community": [],
			"pots": [{"cap": 500, "amount": 0, "eligible": [0, 1]}],
			"bettingState": {"id": 1, "name": "pre-flop"},
			"currentBet": 10,
			"minRaise": 20
		},
		"cards": [{"rank": 14, "suit": "spades"}, {"rank": 13, "suit": "spades"}],
		"playerName": "Bob"
	}`

	var state playerState
	a.NoError(json.Unmarshal([]byte(raw), &state))

	out := renderState("Alice", "Bob folds", &state)
	a.Contains(out, "Bob folds")
	a.Contains(out, "0. Alice  stack: 490  bet: 10  [to act]")
	a.Contains(out, "1. Bob  stack: 495  bet: 5  [D, folded]")
	a.Contains(out, "pre-flop")
	a.Contains(out, "bet: 10  min raise: 20")
	a.Contains(out, "A♠ K♠")
}

func TestRenderState_noTable(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	assert.Equal(t, "hello\n", renderState("Alice", "hello", &playerState{}))
}
