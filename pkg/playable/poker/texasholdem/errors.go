package texasholdem

import (
	"errors"
	"fmt"
)

// UserError is a rejected command
// Nothing is changed when a command returns a UserError
type UserError string

func (u UserError) Error() string {
	return string(u)
}

func newUserError(format string, a ...interface{}) UserError {
	return UserError(fmt.Sprintf(format, a...))
}

// ErrSeatEmpty is returned when a seat was expected to hold a player
var ErrSeatEmpty = errors.New("seat is empty")

// ErrInsufficientChips is returned when a player tries to commit more chips than they have
var ErrInsufficientChips = errors.New("insufficient chips")

// ErrRoundSettled is returned when the betting round has already been settled
var ErrRoundSettled = errors.New("betting round is settled")

var errNotYourTurn = UserError("it is not your turn")
