package texasholdem

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
)

// Game is a single table of No Limit Texas Hold'em
type Game struct {
	mu sync.Mutex

	options Options
	logger  logrus.FieldLogger

	table     *Table
	deck      *deck.Deck
	holeCards [MaxSeats]deck.Hand

	// players are kept after they leave so their chips follow them back to the table
	players map[string]*Player

	// leftover is what could not be split evenly in the last hand
	leftover int
	handID   string

	logChan chan []*playable.LogMessage
}

// Options configures the table
type Options struct {
	SmallBlind int
	BigBlind   int
	MinBuyIn   int

	// DebugCommands enables setchips and sethand
	DebugCommands bool
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind: 5,
		BigBlind:   10,
		MinBuyIn:   500,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be at least the small blind")
	}

	if opts.MinBuyIn < opts.BigBlind {
		return errors.New("minimum buy-in must be at least the big blind")
	}

	return nil
}

// NewGame returns an empty table ready for players
func NewGame(logger logrus.FieldLogger, gen rng.Generator, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Game{
		options: opts,
		logger:  logger,
		table:   NewTable(opts.SmallBlind, opts.BigBlind, opts.MinBuyIn),
		deck:    deck.New(gen),
		players: make(map[string]*Player),
		logChan: make(chan []*playable.LogMessage, 256),
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Texas Hold'em"
}

// LogChan returns the channel hand log messages are sent to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// HandleCommand parses the command text and applies it
func (g *Game) HandleCommand(playerName string, text string) string {
	cmd, err := action.Parse(text)
	if err != nil {
		if errors.Is(err, action.ErrUnknownCommand) {
			return fmt.Sprintf("%s unknown command: %s", playerName, text)
		}

		return fmt.Sprintf("%s %v", playerName, err)
	}

	if cmd.Action.IsDebug() && !g.options.DebugCommands {
		return fmt.Sprintf("%s unknown command: %s", playerName, text)
	}

	return g.Apply(playerName, cmd)
}

// Apply runs a parsed command under the table lock
func (g *Game) Apply(playerName string, cmd *action.Command) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	result, err := g.dispatch(playerName, cmd)
	if err != nil {
		var userErr UserError
		if errors.As(err, &userErr) {
			return fmt.Sprintf("%s %s", playerName, userErr.Error())
		}

		g.logger.WithError(err).WithFields(logrus.Fields{
			"player":  playerName,
			"command": string(cmd.Action),
			"state":   g.table.state.String(),
			"seat":    g.table.SeatOf(playerName),
			"hand":    g.handID,
		}).Error("could not apply command")

		return fmt.Sprintf("%s could not %s", playerName, cmd.Action)
	}

	return result
}

func (g *Game) dispatch(playerName string, cmd *action.Command) (string, error) {
	switch cmd.Action {
	case action.Sit:
		return g.sit(playerName)
	case action.Deal:
		return g.deal(playerName)
	case action.Call:
		return g.call(playerName)
	case action.Check:
		return g.check(playerName)
	case action.Raise:
		return g.raise(playerName, cmd.Amount)
	case action.Fold:
		return g.fold(playerName)
	case action.BuyIn:
		return g.buyIn(playerName)
	case action.Leave:
		return g.leave(playerName)
	case action.SetChips:
		return g.setChips(playerName, cmd.Amount)
	case action.SetHand:
		return g.setHand(playerName, cmd.Cards)
	}

	return "", newUserError("unknown command: %s", cmd.Action)
}
