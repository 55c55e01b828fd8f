package texasholdem

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"holdem-server/pkg/deck"
)

// popGenerator always picks the last card, so draws come off the end of the deck
type popGenerator struct{}

func (popGenerator) Intn(n int) int {
	return n - 1
}

func debugOptions() Options {
	opts := DefaultOptions()
	opts.DebugCommands = true
	return opts
}

func setupGame(t *testing.T, opts Options, names ...string) *Game {
	t.Helper()

	g, err := NewGame(logrus.StandardLogger(), popGenerator{}, opts)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	for _, name := range names {
		res := g.HandleCommand(name, "sit")
		if !assert.True(t, strings.HasPrefix(res, name+" sits in seat"), res) {
			t.FailNow()
		}
	}

	return g
}

func assertResult(t *testing.T, g *Game, name, cmd, expected string) {
	t.Helper()
	assert.Equal(t, expected, g.HandleCommand(name, cmd), "%s: %s", name, cmd)
}

func assertResultContains(t *testing.T, g *Game, name, cmd string, expected ...string) string {
	t.Helper()
	res := g.HandleCommand(name, cmd)
	for _, exp := range expected {
		assert.Contains(t, res, exp, "%s: %s", name, cmd)
	}

	return res
}

// assertRejected ensures the command is rejected with reason and the table is unchanged
func assertRejected(t *testing.T, g *Game, name, cmd, reason string) {
	t.Helper()

	before := g.TableView()
	cards := g.HoleCards(name)
	assert.Equal(t, name+" "+reason, g.HandleCommand(name, cmd), "%s: %s", name, cmd)
	assert.Equal(t, before, g.TableView(), "table changed after rejected %q", cmd)
	assert.Equal(t, cards, g.HoleCards(name))
}

// setHole gives the named player specific hole cards
func setHole(t *testing.T, g *Game, name, cards string) {
	t.Helper()

	seat := g.table.SeatOf(name)
	if !assert.True(t, seat >= 0, "%s is not seated", name) {
		t.FailNow()
	}

	hand := deck.Hand(deck.CardsFromString(cards))
	for _, c := range hand {
		g.deck.RemoveCard(c)
	}

	g.holeCards[seat] = hand
}

// stackBoard makes the next draws come out in the given order
func stackBoard(g *Game, cards string) {
	board := deck.CardsFromString(cards)
	for _, c := range board {
		g.deck.RemoveCard(c)
	}

	for i := len(board) - 1; i >= 0; i-- {
		g.deck.Cards = append(g.deck.Cards, board[i])
	}
}

func stackOf(g *Game, name string) int {
	return g.players[name].Stack()
}

// chipsInPlay counts every chip, including those of players away from the table
func chipsInPlay(g *Game) int {
	total := g.table.TotalChips()
	for name, p := range g.players {
		if !g.table.IsSeated(name) {
			total += p.Stack()
		}
	}

	return total
}
