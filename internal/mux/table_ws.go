package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/playable"
	"holdem-server/pkg/room"
)

const (
	writeWait  = time.Second * 10
	pongWait   = time.Second * 60
	pingPeriod = pongWait * 9 / 10

	// closeFrameWait bounds how long an evicted connection waits for the peer's close frame
	closeFrameWait = time.Second
)

// getTableWS upgrades the request and seats the connection at the dealer's table
// Disconnecting the last connection for a name leaves the table
func (m *Mux) getTableWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		keepAlive(conn)

		client := room.NewClient(conn, playerName(r))
		m.dealer.AddClient(client)

		readerDone := make(chan bool)
		defer func() {
			m.dealer.RemoveClient(client)
			_ = conn.Close()
			close(readerDone)
		}()

		go writeLoop(client, readerDone)
		readLoop(client)
	}
}

// keepAlive extends the read deadline every time the peer answers a ping
func keepAlive(conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
}

func writeLoop(client *room.Client, readerDone chan bool) {
	ticker := time.NewTicker(pingPeriod)
	log := logrus.WithField("client", client.String())
	defer func() {
		ticker.Stop()
		_ = client.Conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case reason := <-client.Close:
			log.WithField("reason", reason).Debug("closing connection")
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = client.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))

			select {
			case <-readerDone:
			case <-time.After(closeFrameWait):
			}
			return
		case msg := <-client.SendChan():
			if logrus.IsLevelEnabled(logrus.TraceLevel) {
				msgBytes, _ := json.Marshal(msg)
				log.WithField("message", string(msgBytes)).Trace("sending message to client")
			}

			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("could not write message")
				return
			}
		case <-readerDone:
			return
		}
	}
}

// readLoop hands every command to the dealer until the connection fails
func readLoop(client *room.Client) {
	for {
		var msg playable.PayloadIn
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithField("client", client.String()).Warn("connection closed unexpectedly")
			}

			client.CloseError = err
			return
		}

		client.ReceivedMessage(&msg)
	}
}
