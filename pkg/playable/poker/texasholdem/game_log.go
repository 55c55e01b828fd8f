package texasholdem

import "holdem-server/pkg/playable"

// sendLogMessages queues messages for the room without ever blocking a command
func (g *Game) sendLogMessages(lms ...*playable.LogMessage) {
	if len(lms) == 0 {
		return
	}

	select {
	case g.logChan <- lms:
	default:
		g.logger.WithField("hand", g.handID).Warn("log channel is full, dropping messages")
	}
}
