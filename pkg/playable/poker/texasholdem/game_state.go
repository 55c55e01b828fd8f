package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
)

// SeatView is the public view of one seat
type SeatView struct {
	Seat   int    `json:"seat"`
	Name   string `json:"name"`
	Stack  int    `json:"stack"`
	Bet    int    `json:"bet"`
	Folded bool   `json:"folded"`
	AllIn  bool   `json:"allIn"`
	Paused bool   `json:"paused"`
	BuyIns int    `json:"buyIns"`
}

// PotView is the public view of a pot tier
type PotView struct {
	Cap      int   `json:"cap"`
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// TableView is what every client may see
type TableView struct {
	Seats        []*SeatView  `json:"seats"`
	DealerSeat   int          `json:"dealerSeat"`
	ActingSeat   int          `json:"actingSeat"`
	Community    deck.Hand    `json:"community"`
	Pots         []*PotView   `json:"pots"`
	BettingState BettingState `json:"bettingState"`
	CurrentBet   int          `json:"currentBet"`
	MinRaise     int          `json:"minRaise"`
	SmallBlind   int          `json:"smallBlind"`
	BigBlind     int          `json:"bigBlind"`
	MinBuyIn     int          `json:"minBuyIn"`
}

// PlayerState is the table view plus the viewer's own hole cards
type PlayerState struct {
	Table *TableView `json:"table"`
	Cards deck.Hand  `json:"cards"`
	// PlayerName is the player whose command produced this state
	PlayerName string `json:"playerName"`
}

// SetActor records the player whose command produced this state
func (p *PlayerState) SetActor(playerName string) {
	p.PlayerName = playerName
}

// TableView returns the public view of the table
func (g *Game) TableView() *TableView {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.tableView()
}

func (g *Game) tableView() *TableView {
	t := g.table

	seats := make([]*SeatView, MaxSeats)
	for seat, p := range t.seats {
		if p == nil {
			continue
		}

		seats[seat] = &SeatView{
			Seat:   seat,
			Name:   p.Name,
			Stack:  p.stack,
			Bet:    p.RoundBet(),
			Folded: p.folded,
			AllIn:  p.allIn,
			Paused: p.paused,
			BuyIns: p.buyIns,
		}
	}

	pots := make([]*PotView, 0, t.pots.Len())
	for _, pot := range t.pots.Pots() {
		pots = append(pots, &PotView{
			Cap:      pot.Cap,
			Amount:   pot.Amount,
			Eligible: pot.EligibleSeats(),
		})
	}

	minRaise := t.currentBet + t.minRaiseStep
	if t.state == PreDeal {
		minRaise = 0
	}

	return &TableView{
		Seats:        seats,
		DealerSeat:   t.dealerSeat,
		ActingSeat:   t.actingSeat,
		Community:    t.community.Clone(),
		Pots:         pots,
		BettingState: t.state,
		CurrentBet:   t.currentBet,
		MinRaise:     minRaise,
		SmallBlind:   t.smallBlind,
		BigBlind:     t.bigBlind,
		MinBuyIn:     t.minBuyIn,
	}
}

// HoleCards returns the named player's own hole cards
func (g *Game) HoleCards(name string) deck.Hand {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ownHoleCards(name)
}

func (g *Game) ownHoleCards(name string) deck.Hand {
	seat := g.table.SeatOf(name)
	if seat < 0 || g.holeCards[seat] == nil {
		return nil
	}

	return g.holeCards[seat].Clone()
}

// GetPlayerState returns the state as seen by the named player
func (g *Game) GetPlayerState(playerName string) *playable.Response {
	g.mu.Lock()
	defer g.mu.Unlock()

	return &playable.Response{
		Key: "table",
		Data: &PlayerState{
			Table: g.tableView(),
			Cards: g.ownHoleCards(playerName),
		},
	}
}
