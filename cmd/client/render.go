package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"holdem-server/pkg/deck"
)

type message struct {
	Key   string          `json:"key"`
	Value string          `json:"value"`
	Data  json.RawMessage `json:"data"`
}

type seatView struct {
	Seat   int    `json:"seat"`
	Name   string `json:"name"`
	Stack  int    `json:"stack"`
	Bet    int    `json:"bet"`
	Folded bool   `json:"folded"`
	AllIn  bool   `json:"allIn"`
	Paused bool   `json:"paused"`
}

type potView struct {
	Cap      int   `json:"cap"`
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

type tableView struct {
	Seats        []*seatView `json:"seats"`
	DealerSeat   int         `json:"dealerSeat"`
	ActingSeat   int         `json:"actingSeat"`
	Community    deck.Hand   `json:"community"`
	Pots         []*potView  `json:"pots"`
	BettingState struct {
		Name string `json:"name"`
	} `json:"bettingState"`
	CurrentBet int `json:"currentBet"`
	MinRaise   int `json:"minRaise"`
}

type playerState struct {
	Table      *tableView `json:"table"`
	Cards      deck.Hand  `json:"cards"`
	PlayerName string     `json:"playerName"`
}

// renderState draws the table as the named player sees it
func renderState(name, result string, state *playerState) string {
	var b strings.Builder
	if result != "" {
		b.WriteString(pterm.LightYellow(result))
		b.WriteString("\n")
	}

	if state.Table == nil {
		return b.String()
	}

	t := state.Table
	var seats []string
	for _, seat := range t.Seats {
		if seat == nil {
			continue
		}

		seats = append(seats, renderSeat(seat, t, seat.Name == name))
	}

	board := fmt.Sprintf("%s  %s", t.BettingState.Name, renderCards(t.Community))
	for i, pot := range t.Pots {
		board += fmt.Sprintf("  pot %d: %d", i, pot.Amount)
	}

	if t.CurrentBet > 0 {
		board += fmt.Sprintf("  bet: %d  min raise: %d", t.CurrentBet, t.MinRaise)
	}

	b.WriteString(pterm.DefaultBox.WithTitle("Table").WithTitleTopLeft().Sprint(board))
	b.WriteString("\n")
	if len(seats) > 0 {
		b.WriteString(strings.Join(seats, "\n"))
		b.WriteString("\n")
	}

	if len(state.Cards) > 0 {
		b.WriteString(pterm.BgGreen.Sprintf(" %s ", renderCards(state.Cards)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSeat(seat *seatView, t *tableView, self bool) string {
	var flags []string
	if seat.Seat == t.DealerSeat {
		flags = append(flags, "D")
	}

	if seat.Seat == t.ActingSeat {
		flags = append(flags, "to act")
	}

	switch {
	case seat.Folded:
		flags = append(flags, pterm.LightRed("folded"))
	case seat.AllIn:
		flags = append(flags, pterm.LightMagenta("all in"))
	case seat.Paused:
		flags = append(flags, "paused")
	}

	label := seat.Name
	if self {
		label = pterm.LightCyan(seat.Name)
	}

	line := fmt.Sprintf("%d. %s  stack: %d  bet: %d", seat.Seat, label, seat.Stack, seat.Bet)
	if len(flags) > 0 {
		line += "  [" + strings.Join(flags, ", ") + "]"
	}

	return line
}

func renderCards(cards deck.Hand) string {
	if len(cards) == 0 {
		return "-"
	}

	return cards.String()
}
