package room

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/playable"
)

// Dealer runs the table
// Every command, connect and disconnect is executed on the dealer's run loop, so the game
// only ever sees one command at a time
type Dealer struct {
	logger  logrus.FieldLogger
	clients map[string]*Client
	lock    sync.RWMutex
	game    playable.Playable

	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
func NewDealer(logger logrus.FieldLogger, game playable.Playable) *Dealer {
	return &Dealer{
		logger:        logger,
		clients:       make(map[string]*Client),
		game:          game,
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients ordered by name
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for _, client := range d.clients {
		clients = append(clients, client)
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].name < clients[j].name
	})

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	d.logger.WithField("game", d.game.Name()).Debug("creating dealer run loop")
	logChan := d.game.LogChan()
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case messages := <-logChan:
			d.addLogMessages(messages)
			d.broadcast(&playable.Response{
				Key:  "log",
				Data: messages,
			})
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient registers a connection for the client's name
// An older connection for the same name is closed without leaving the table
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	previous, found := d.clients[client.name]
	d.clients[client.name] = client
	d.lock.Unlock()

	if found && previous != client {
		d.logger.WithField("client", previous.String()).Info("connection overridden by a new login")
		previous.evict(CloseReasonOverridden)
	}

	d.execInRunLoop <- func() {
		if state := d.game.GetPlayerState(client.name); state != nil {
			d.sendTo(client, state)
		}

		if len(d.logMessages) > 0 {
			d.sendTo(client, &playable.Response{
				Key:  "log",
				Data: d.logMessages,
			})
		}
	}
}

// RemoveClient removes a connection
// lastClient is true when the name has no remaining connection, in which case the player leaves the table
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	current, found := d.clients[client.name]
	if !found || current != client {
		d.lock.Unlock()
		return false
	}

	delete(d.clients, client.name)
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		d.execute(client.name, "leave", "")
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.execInRunLoop <- func() {
		d.execute(c.name, msg.Command, msg.Context)
	}
}

// execute runs a command and fans the result out to every client
// NOTE: must only be called from the run loop
func (d *Dealer) execute(playerName, command, ctx string) {
	result := d.game.HandleCommand(playerName, command)
	d.logger.WithFields(logrus.Fields{
		"player":  playerName,
		"command": command,
	}).Debug(result)

	for _, client := range d.Clients() {
		state := d.game.GetPlayerState(client.name)
		if state == nil {
			continue
		}

		state.Value = result
		if aware, ok := state.Data.(playable.ActorAware); ok {
			aware.SetActor(playerName)
		}

		if client.name == playerName {
			state.Context = ctx
		}

		d.sendTo(client, state)
	}
}

func (d *Dealer) sendTo(client *Client, msg interface{}) {
	if !client.Send(msg) {
		d.logger.WithField("client", client.String()).Warn("send buffer is full, dropping message")
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		d.sendTo(client, msg)
	}
}

// PlayerState returns the game state as the named player sees it
func (d *Dealer) PlayerState(playerName string) *playable.Response {
	return d.game.GetPlayerState(playerName)
}
