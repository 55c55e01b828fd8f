package room

import (
	"holdem-server/pkg/playable"
)

// logMessageLimit is how much hand history a newly connected client receives
const logMessageLimit = 25

// addLogMessages appends to the history, dropping the oldest entries past the limit
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	history := make([]*playable.LogMessage, 0, len(d.logMessages)+len(messages))
	history = append(history, d.logMessages...)
	history = append(history, messages...)

	if overflow := len(history) - logMessageLimit; overflow > 0 {
		history = history[overflow:]
	}

	d.logMessages = history
}
