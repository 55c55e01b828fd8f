package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/playable"
)

// CloseReasonOverridden is sent to a connection that was replaced by a newer login for the same name
const CloseReasonOverridden = "overridden"

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close receives the reason when the server wants the connection closed
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer
	name   string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, name string) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string, 1),
		Conn:  conn,
		name:  name,
	}
}

// Name returns the player name the client authenticated as
func (c *Client) Name() string {
	return c.name
}

// Send send a message to the web client
// false is returned if the client's buffer is full
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%p", c.name, c)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}

// evict asks the transport to close the connection
func (c *Client) evict(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}
