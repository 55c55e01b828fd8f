package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"holdem-server/pkg/deck"
)

// Playable is a game that accepts text commands from named players
type Playable interface {
	// HandleCommand applies the command and returns a human readable result
	// Rejections are reported through the result, never through partial state changes
	HandleCommand(playerName string, text string) string

	// GetPlayerState returns the current state of the game for the player
	GetPlayerState(playerName string) *Response

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If PlayerNames is empty, assume it's a general statement, otherwise the message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID        string      `json:"uuid"`
	PlayerNames []string    `json:"playerNames"`
	Cards       []deck.Card `json:"cards"`
	Message     string      `json:"message"`
	Time        time.Time   `json:"time"`
}

// Response is a message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from a client
type PayloadIn struct {
	// Command is the raw command text, i.e., "raise 40"
	Command string `json:"command"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerName string, format string, a ...interface{}) *LogMessage {
	var playerNames []string
	if playerName != "" {
		playerNames = []string{playerName}
	}

	return &LogMessage{
		UUID:        uuid.New().String(),
		PlayerNames: playerNames,
		Message:     fmt.Sprintf(format, a...),
		Time:        time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerName string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerName, format, a...)}
}

// ActorAware is implemented by state payloads that record which player's command produced them
type ActorAware interface {
	SetActor(playerName string)
}
