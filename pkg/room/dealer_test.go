package room

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"holdem-server/pkg/playable"
)

type fakeState struct {
	Viewer string
	Actor  string
}

func (f *fakeState) SetActor(playerName string) {
	f.Actor = playerName
}

type fakeGame struct {
	mu       sync.Mutex
	commands []string
	logChan  chan []*playable.LogMessage
}

func newFakeGame() *fakeGame {
	return &fakeGame{logChan: make(chan []*playable.LogMessage, 16)}
}

func (f *fakeGame) HandleCommand(playerName string, text string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.commands = append(f.commands, playerName+":"+text)
	return fmt.Sprintf("%s did %s", playerName, text)
}

func (f *fakeGame) GetPlayerState(playerName string) *playable.Response {
	return &playable.Response{Key: "table", Data: &fakeState{Viewer: playerName}}
}

func (f *fakeGame) Name() string {
	return "fake"
}

func (f *fakeGame) LogChan() <-chan []*playable.LogMessage {
	return f.logChan
}

func (f *fakeGame) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.commands...)
}

func setupDealer(t *testing.T) (*Dealer, *fakeGame) {
	t.Helper()

	game := newFakeGame()
	d := NewDealer(logrus.StandardLogger(), game)
	d.StartShift()
	t.Cleanup(d.EndShift)

	return d, game
}

// flush waits until everything queued on the run loop has executed
func flush(d *Dealer) {
	done := make(chan bool)
	d.execInRunLoop <- func() {
		close(done)
	}

	<-done
}

func drain(c *Client) []*playable.Response {
	var responses []*playable.Response
	for {
		select {
		case msg := <-c.SendChan():
			responses = append(responses, msg.(*playable.Response))
		default:
			return responses
		}
	}
}

func TestDealer_AddClient(t *testing.T) {
	a := assert.New(t)
	d, _ := setupDealer(t)

	c := NewClient(nil, "Alice")
	d.AddClient(c)
	flush(d)

	a.Equal(c, d.Clients()[0])
	responses := drain(c)
	if a.Len(responses, 1) {
		a.Equal("table", responses[0].Key)
		a.Equal("Alice", responses[0].Data.(*fakeState).Viewer)
	}
}

func TestDealer_ReceivedMessage(t *testing.T) {
	a := assert.New(t)
	d, game := setupDealer(t)

	alice := NewClient(nil, "Alice")
	bob := NewClient(nil, "Bob")
	d.AddClient(alice)
	d.AddClient(bob)
	flush(d)
	drain(alice)
	drain(bob)

	alice.ReceivedMessage(&playable.PayloadIn{Command: "sit", Context: "ctx-1"})
	flush(d)

	a.Equal([]string{"Alice:sit"}, game.Commands())

	aliceResponses := drain(alice)
	bobResponses := drain(bob)
	if a.Len(aliceResponses, 1) && a.Len(bobResponses, 1) {
		a.Equal("Alice did sit", aliceResponses[0].Value)
		a.Equal("ctx-1", aliceResponses[0].Context)
		a.Equal(&fakeState{Viewer: "Alice", Actor: "Alice"}, aliceResponses[0].Data)

		a.Equal("Alice did sit", bobResponses[0].Value)
		a.Equal("", bobResponses[0].Context)
		a.Equal(&fakeState{Viewer: "Bob", Actor: "Alice"}, bobResponses[0].Data)
	}
}

func TestDealer_DuplicateLogin(t *testing.T) {
	a := assert.New(t)
	d, game := setupDealer(t)

	first := NewClient(nil, "Alice")
	second := NewClient(nil, "Alice")
	d.AddClient(first)
	d.AddClient(second)
	flush(d)

	select {
	case reason := <-first.Close:
		a.Equal(CloseReasonOverridden, reason)
	case <-time.After(time.Second):
		a.Fail("first connection was not evicted")
	}

	// the evicted connection going away must not make Alice leave
	a.False(d.RemoveClient(first))
	flush(d)
	a.Empty(game.Commands())
	a.Equal([]*Client{second}, d.Clients())

	a.True(d.RemoveClient(second))
	flush(d)
	a.Equal([]string{"Alice:leave"}, game.Commands())
	a.Empty(d.Clients())
}

func TestDealer_LogMessages(t *testing.T) {
	a := assert.New(t)
	d, game := setupDealer(t)

	alice := NewClient(nil, "Alice")
	d.AddClient(alice)
	flush(d)
	drain(alice)

	game.logChan <- playable.SimpleLogMessageSlice("Alice", "sits")
	a.Eventually(func() bool {
		n := make(chan int)
		d.execInRunLoop <- func() {
			n <- len(d.logMessages)
		}

		return <-n == 1
	}, time.Second, time.Millisecond*10)

	responses := drain(alice)
	if a.Len(responses, 1) {
		a.Equal("log", responses[0].Key)
	}

	// late joiners get the recent history
	bob := NewClient(nil, "Bob")
	d.AddClient(bob)
	flush(d)

	responses = drain(bob)
	if a.Len(responses, 2) {
		a.Equal("table", responses[0].Key)
		a.Equal("log", responses[1].Key)
	}
}

func TestDealer_addLogMessages(t *testing.T) {
	d := NewDealer(logrus.StandardLogger(), newFakeGame())
	for i := 0; i < logMessageLimit+5; i++ {
		d.addLogMessages(playable.SimpleLogMessageSlice("", "message %d", i))
	}

	assert.Len(t, d.logMessages, logMessageLimit)
	assert.Equal(t, "message 5", d.logMessages[0].Message)
}
