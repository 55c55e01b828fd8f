package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"holdem-server/pkg/deck"
)

// ErrUnknownCommand is returned when the command text does not start with a known verb
var ErrUnknownCommand = errors.New("unknown command")

// ErrMalformedArgument is returned when a command's argument cannot be parsed
var ErrMalformedArgument = errors.New("malformed argument")

// Action represents an action a player can take
type Action string

// action constants
const (
	Sit      Action = "sit"
	Deal     Action = "deal"
	Call     Action = "call"
	Check    Action = "check"
	Raise    Action = "raise"
	Fold     Action = "fold"
	BuyIn    Action = "buyin"
	Leave    Action = "leave"
	SetChips Action = "setchips"
	SetHand  Action = "sethand"
)

var allowedActions = map[Action]bool{
	Sit:      true,
	Deal:     true,
	Call:     true,
	Check:    true,
	Raise:    true,
	Fold:     true,
	BuyIn:    true,
	Leave:    true,
	SetChips: true,
	SetHand:  true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownCommand, s)
}

func (a Action) String() string {
	switch a {
	case Sit:
		return "Sit"
	case Deal:
		return "Deal"
	case Call:
		return "Call"
	case Check:
		return "Check"
	case Raise:
		return "Raise"
	case Fold:
		return "Fold"
	case BuyIn:
		return "Buy In"
	case Leave:
		return "Leave"
	case SetChips:
		return "Set Chips"
	case SetHand:
		return "Set Hand"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// IsDebug returns true for actions only available to test harnesses
func (a Action) IsDebug() bool {
	return a == SetChips || a == SetHand
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Sit:
		return "sat down"
	case Deal:
		return "dealt"
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case BuyIn:
		return fmt.Sprintf("bought in for ${%d}", amount)
	case Leave:
		return "left the table"
	}

	return ""
}

// Command is a parsed command
type Command struct {
	Action Action
	Amount int
	Cards  []deck.Card
}

// Parse turns command text like "raise 40" into a Command
// Verbs are case-insensitive
func Parse(text string) (*Command, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, text)
	}

	a, err := FromString(fields[0])
	if err != nil {
		return nil, err
	}

	cmd := &Command{Action: a}
	args := fields[1:]

	switch a {
	case Raise, SetChips:
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s requires an amount", ErrMalformedArgument, a)
		}

		amount, err := strconv.Atoi(args[0])
		if err != nil || amount < 0 {
			return nil, fmt.Errorf("%w: %q is not a valid amount", ErrMalformedArgument, args[0])
		}

		cmd.Amount = amount
	case SetHand:
		if len(args) != 1 || len(args[0]) != 4 {
			return nil, fmt.Errorf("%w: %s requires a four character code", ErrMalformedArgument, a)
		}

		for _, code := range []string{args[0][0:2], args[0][2:4]} {
			card, err := deck.ParseShortCode(code)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedArgument, err)
			}

			cmd.Cards = append(cmd.Cards, card)
		}

		if cmd.Cards[0].Equal(cmd.Cards[1]) {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrMalformedArgument, cmd.Cards[0])
		}
	default:
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: %s takes no arguments", ErrMalformedArgument, a)
		}
	}

	return cmd, nil
}
