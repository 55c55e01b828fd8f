package texasholdem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"
)

// showdown pays out every pot and resets the table for the next deal
func (g *Game) showdown(b *strings.Builder) error {
	t := g.table
	contesters := t.contesters()
	payouts := make(map[int]int)
	leftover := 0

	if len(contesters) == 1 {
		winner := contesters[0]
		payouts[winner] = t.pots.Total()
		fmt.Fprintf(b, ". %s wins %d", t.seats[winner].Name, payouts[winner])
	} else {
		hands := make(map[int]*handanalyzer.HandAnalyzer)
		wm := potmanager.NewWinManager()
		for _, seat := range contesters {
			ha, err := handanalyzer.Evaluate(g.holeCards[seat], t.community)
			if err != nil {
				return fmt.Errorf("could not evaluate seat %d: %w", seat, err)
			}

			hands[seat] = ha
			wm.AddSeat(seat, ha.GetStrength())
		}

		reveal := make([]*playable.LogMessage, 0, len(contesters))
		for _, seat := range contesters {
			lm := playable.SimpleLogMessage(t.seats[seat].Name, "shows %s", hands[seat].GetHand())
			lm.Cards = g.holeCards[seat].Clone()
			reveal = append(reveal, lm)
		}
		g.sendLogMessages(reveal...)

		pots := t.pots.Payable()
		for i, pot := range pots {
			if pot.Amount == 0 {
				continue
			}

			winners := wm.Winners(pot.Eligible)
			if len(winners) == 0 {
				leftover += pot.Amount
				continue
			}

			share, rem := potmanager.Split(pot.Amount, len(winners), t.smallBlind)
			leftover += rem

			names := make([]string, len(winners))
			for j, seat := range winners {
				payouts[seat] += share
				names[j] = t.seats[seat].Name
			}

			b.WriteString(". ")
			if len(pots) > 1 {
				if i == 0 {
					b.WriteString("Main pot: ")
				} else {
					fmt.Fprintf(b, "Side pot %d: ", i)
				}
			}

			hand := hands[winners[0]]
			if len(winners) == 1 {
				fmt.Fprintf(b, "%s wins %d with %s", names[0], share, hand)
			} else {
				fmt.Fprintf(b, "%s split %d with %s", strings.Join(names, " and "), share*len(winners), hand)
			}
		}
	}

	seats := make([]int, 0, len(payouts))
	for seat := range payouts {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	lms := make([]*playable.LogMessage, 0, len(seats))
	for _, seat := range seats {
		p := t.seats[seat]
		p.AddChips(payouts[seat])
		lms = append(lms, playable.SimpleLogMessage(p.Name, "wins ${%d}", payouts[seat]))
	}
	g.sendLogMessages(lms...)

	if leftover > 0 {
		fmt.Fprintf(b, ". %d carries over to the next hand", leftover)
	}

	g.logger.WithFields(logrus.Fields{
		"hand":     g.handID,
		"winners":  len(seats),
		"leftover": leftover,
	}).Info("hand complete")

	g.leftover = leftover
	t.endHand(leftover)

	if t.dealerSeat >= 0 {
		fmt.Fprintf(b, ". %s has the deal", t.seats[t.dealerSeat].Name)
	}

	return nil
}
