package texasholdem

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
)

var errNotSeated = UserError("is not seated")

func (g *Game) seatedPlayer(name string) (int, *Player, error) {
	seat := g.table.SeatOf(name)
	if seat < 0 {
		return -1, nil, errNotSeated
	}

	p, err := g.table.Player(seat)
	if err != nil {
		return -1, nil, err
	}

	return seat, p, nil
}

// actingPlayer returns the named player if it is their turn
func (g *Game) actingPlayer(name string) (int, *Player, error) {
	seat, p, err := g.seatedPlayer(name)
	if err != nil {
		return -1, nil, err
	}

	if g.table.state == PreDeal {
		return -1, nil, UserError("cannot act, there is no hand in progress")
	}

	if seat != g.table.actingSeat {
		return -1, nil, errNotYourTurn
	}

	return seat, p, nil
}

func (g *Game) sit(name string) (string, error) {
	if g.table.IsSeated(name) {
		return "", UserError("is already seated")
	}

	if g.table.IsFull() {
		return "", UserError("cannot sit, the table is full")
	}

	p, ok := g.players[name]
	if !ok {
		p = NewPlayer(name, 0)
		g.players[name] = p
	}

	boughtIn := 0
	if p.stack < g.options.MinBuyIn {
		p.BuyIn(g.options.MinBuyIn)
		boughtIn = g.options.MinBuyIn
	}

	seat, err := g.table.SitPlayer(p)
	if err != nil {
		return "", err
	}

	// anyone sitting down mid-hand waits for the next deal
	p.inHand = false
	p.folded = false
	p.allIn = false
	p.actedThisRound = false
	p.committed = nil
	p.potLevel = 0

	g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.Sit.LogMessage(0)))
	if boughtIn > 0 {
		g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.BuyIn.LogMessage(boughtIn)))
	}

	return fmt.Sprintf("%s sits in seat %d with %d chips", name, seat, p.stack), nil
}

func (g *Game) deal(name string) (string, error) {
	t := g.table
	if t.state != PreDeal {
		return "", UserError("cannot deal, a hand is in progress")
	}

	if !t.IsSeated(name) {
		return "", errNotSeated
	}

	if !t.IsDealer(name) {
		return "", UserError("is not the dealer")
	}

	eligible := t.eligibleForDeal()
	if len(eligible) < 2 {
		return "", newUserError("cannot deal, at least two players need %d chips", t.bigBlind)
	}

	g.deck.Reset()
	cards, err := g.deck.DrawN(2 * len(eligible))
	if err != nil {
		return "", fmt.Errorf("could not deal hole cards: %w", err)
	}

	if err := t.nextHand(g.leftover); err != nil {
		return "", err
	}

	g.leftover = 0
	g.handID = uuid.New().String()

	g.holeCards = [MaxSeats]deck.Hand{}
	order := g.dealOrder()
	for i, seat := range order {
		g.holeCards[seat] = deck.Hand{cards[i], cards[i+len(order)]}
	}

	sb := t.seats[t.smallBlindSeat]
	bb := t.seats[t.bigBlindSeat]

	g.logger.WithFields(logrus.Fields{
		"hand":    g.handID,
		"dealer":  t.dealerSeat,
		"players": len(order),
	}).Info("hand dealt")

	g.sendLogMessages(
		playable.SimpleLogMessage(name, "%s", action.Deal.LogMessage(0)),
		playable.SimpleLogMessage(sb.Name, "posts the small blind ${%d}", sb.RoundBet()),
		playable.SimpleLogMessage(bb.Name, "posts the big blind ${%d}", bb.RoundBet()),
	)

	var b strings.Builder
	fmt.Fprintf(&b, "%s deals. %s posts small blind %d, %s posts big blind %d", name, sb.Name, sb.RoundBet(), bb.Name, bb.RoundBet())

	actors := t.actors()
	if len(actors) == 0 || (len(actors) == 1 && t.seats[actors[0]].RoundBet() >= t.currentBet) {
		t.actingSeat = -1
		err := g.finishRound(&b)
		return b.String(), err
	}

	fmt.Fprintf(&b, ". %s to act", t.seats[t.actingSeat].Name)
	return b.String(), nil
}

// dealOrder returns the seats in the hand starting after the dealer
func (g *Game) dealOrder() []int {
	t := g.table
	order := make([]int, 0, MaxSeats)
	for i := 1; i <= MaxSeats; i++ {
		seat := (t.dealerSeat + i + MaxSeats) % MaxSeats
		if p := t.seats[seat]; p != nil && p.inHand {
			order = append(order, seat)
		}
	}

	return order
}

func (g *Game) call(name string) (string, error) {
	_, p, err := g.actingPlayer(name)
	if err != nil {
		return "", err
	}

	owed := g.table.currentBet - p.RoundBet()
	placed, err := g.table.call(p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if owed <= 0 {
		fmt.Fprintf(&b, "%s checks", name)
		g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.Check.LogMessage(0)))
	} else {
		fmt.Fprintf(&b, "%s calls %d", name, placed)
		g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.Call.LogMessage(placed)))
	}

	if p.allIn {
		b.WriteString(" and is all in")
	}

	return g.finishTurn(&b)
}

func (g *Game) check(name string) (string, error) {
	_, p, err := g.actingPlayer(name)
	if err != nil {
		return "", err
	}

	if err := g.table.check(p); err != nil {
		return "", err
	}

	g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.Check.LogMessage(0)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s checks", name)
	return g.finishTurn(&b)
}

func (g *Game) raise(name string, amount int) (string, error) {
	_, p, err := g.actingPlayer(name)
	if err != nil {
		return "", err
	}

	n, err := g.table.raise(p, amount)
	if err != nil {
		return "", err
	}

	g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.Raise.LogMessage(n)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s raises to %d", name, n)
	if p.allIn {
		b.WriteString(" and is all in")
	}

	return g.finishTurn(&b)
}

func (g *Game) fold(name string) (string, error) {
	seat, p, err := g.actingPlayer(name)
	if err != nil {
		return "", err
	}

	g.table.fold(seat, p)
	g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.Fold.LogMessage(0)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s folds", name)
	return g.finishTurn(&b)
}

func (g *Game) buyIn(name string) (string, error) {
	_, p, err := g.seatedPlayer(name)
	if err != nil {
		return "", err
	}

	if p.stack >= g.options.MinBuyIn {
		return "", newUserError("has %d chips, buy in is only allowed below %d", p.stack, g.options.MinBuyIn)
	}

	if g.table.state != PreDeal && p.inHand && !p.paused && !p.folded {
		return "", UserError("cannot buy in during a hand")
	}

	p.BuyIn(g.options.MinBuyIn)
	g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.BuyIn.LogMessage(g.options.MinBuyIn)))

	return fmt.Sprintf("%s buys in for %d", name, g.options.MinBuyIn), nil
}

func (g *Game) leave(name string) (string, error) {
	seat, p, err := g.seatedPlayer(name)
	if err != nil {
		return "", err
	}

	t := g.table
	inHand := t.state != PreDeal && p.inHand
	contesting := inHand && !p.folded
	wasActing := inHand && seat == t.actingSeat

	if inHand {
		if len(p.committed) != t.pots.Len() {
			return "", fmt.Errorf("leave: %s has %d tiers, table has %d", name, len(p.committed), t.pots.Len())
		}

		if !p.folded {
			t.fold(seat, p)
		}

		if err := t.pots.Sweep(p.sweep()); err != nil {
			return "", err
		}
	}

	t.vacate(seat)
	g.holeCards[seat] = nil
	p.inHand = false
	p.committed = nil
	p.potLevel = 0

	if t.state == PreDeal && t.dealerSeat == seat {
		t.moveButton()
	}

	g.sendLogMessages(playable.SimpleLogMessage(name, "%s", action.Leave.LogMessage(0)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s leaves the table", name)

	if !contesting {
		return b.String(), nil
	}

	if wasActing {
		return g.finishTurn(&b)
	}

	if len(t.contesters()) <= 1 {
		t.actingSeat = -1
		err := g.finishRound(&b)
		return b.String(), err
	}

	return b.String(), nil
}

func (g *Game) setChips(name string, amount int) (string, error) {
	_, p, err := g.seatedPlayer(name)
	if err != nil {
		return "", err
	}

	if g.table.state != PreDeal {
		return "", UserError("cannot set chips during a hand")
	}

	p.stack = amount
	return fmt.Sprintf("%s sets chips to %d", name, amount), nil
}

func (g *Game) setHand(name string, cards []deck.Card) (string, error) {
	seat, p, err := g.seatedPlayer(name)
	if err != nil {
		return "", err
	}

	if g.table.state == PreDeal || !p.isContesting() {
		return "", UserError("cannot set a hand without being in one")
	}

	for _, c := range cards {
		if g.table.community.HasCard(c) {
			return "", newUserError("cannot use %s, it is on the board", c)
		}

		for other, hole := range g.holeCards {
			if other != seat && hole.HasCard(c) {
				return "", newUserError("cannot use %s, it is in another hand", c)
			}
		}
	}

	for _, c := range cards {
		g.deck.RemoveCard(c)
	}

	g.holeCards[seat] = deck.Hand(cards).Clone()
	return fmt.Sprintf("%s sets hand to %s", name, g.holeCards[seat]), nil
}

// finishTurn moves the action along after the acting player is done
func (g *Game) finishTurn(b *strings.Builder) (string, error) {
	t := g.table
	if len(t.contesters()) <= 1 {
		t.actingSeat = -1
		err := g.finishRound(b)
		return b.String(), err
	}

	settled, err := t.advanceActor()
	if err != nil {
		return "", err
	}

	if !settled {
		fmt.Fprintf(b, ". %s to act", t.seats[t.actingSeat].Name)
		return b.String(), nil
	}

	err = g.finishRound(b)
	return b.String(), err
}

// finishRound sweeps the bets and deals the next street
func (g *Game) finishRound(b *strings.Builder) error {
	t := g.table
	if err := t.endBettingRound(); err != nil {
		return err
	}

	if len(t.contesters()) <= 1 || len(t.actors()) <= 1 {
		return g.runOut(b)
	}

	if t.state == River {
		return g.showdown(b)
	}

	next := t.state + 1
	cards, err := g.deck.DrawN(next.communityCards() - len(t.community))
	if err != nil {
		return fmt.Errorf("could not deal the %s: %w", next, err)
	}

	t.community = append(t.community, cards...)
	t.state = next

	lm := playable.SimpleLogMessage("", "%s dealt", next)
	lm.Cards = cards
	g.sendLogMessages(lm)

	fmt.Fprintf(b, ". %s: %s. %s to act", next.title(), deck.Hand(cards), t.seats[t.actingSeat].Name)
	return nil
}

// runOut deals the rest of the board when no more betting is possible
func (g *Game) runOut(b *strings.Builder) error {
	t := g.table
	if missing := 5 - len(t.community); missing > 0 {
		cards, err := g.deck.DrawN(missing)
		if err != nil {
			return fmt.Errorf("could not run out the board: %w", err)
		}

		t.community = append(t.community, cards...)

		lm := playable.SimpleLogMessage("", "the board runs out")
		lm.Cards = cards
		g.sendLogMessages(lm)

		fmt.Fprintf(b, ". Board: %s", t.community)
	}

	t.state = River
	return g.showdown(b)
}
