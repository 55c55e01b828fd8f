package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"holdem-server/internal/util"
	"holdem-server/pkg/model"
	"holdem-server/pkg/playable"
)

var server = flag.String("server", "http://localhost:5000", "the server base URL")

type authPayload struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type authResponse struct {
	Name    string `json:"name"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

func main() {
	flag.Parse()

	name := getName()
	if name == "" {
		os.Exit(1)
	}

	password := getPassword()
	if password == "" {
		os.Exit(1)
	}

	token, err := authenticate(*server, name, password)
	if err != nil {
		logrus.WithError(err).Fatal("could not log in")
	}

	conn, err := dial(*server, token)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the table")
	}
	defer conn.Close()

	go readLoop(conn, name)

	fmt.Println("commands: sit, deal, call, check, raise <n>, fold, buyin, leave")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "quit" || line == "exit" {
			break
		}

		if err := conn.WriteJSON(playable.PayloadIn{Command: line}); err != nil {
			logrus.WithError(err).Error("could not send command")
			break
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func authenticate(base, name, password string) (string, error) {
	b, err := json.Marshal(authPayload{Name: name, Password: password})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(strings.TrimRight(base, "/")+"/player/auth", "application/json", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var ar authResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(ar.Message)
	}

	return ar.Token, nil
}

func dial(base, token string) (*websocket.Conn, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + "/table/ws")
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	u.RawQuery = url.Values{"access_token": []string{token}}.Encode()
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	return conn, err
}

// readLoop prints everything the table sends until the connection closes
func readLoop(conn *websocket.Conn, name string) {
	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Text != "" {
				fmt.Printf("connection closed: %s\n", closeErr.Text)
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure) {
				logrus.WithError(err).Error("connection lost")
			}

			os.Exit(0)
		}

		switch msg.Key {
		case "table":
			var state playerState
			if err := json.Unmarshal(msg.Data, &state); err != nil {
				logrus.WithError(err).Warn("could not read table state")
				continue
			}

			fmt.Print(renderState(name, msg.Value, &state))
		case "log":
			// the table message already carries the result
		default:
			fmt.Printf("%s: %s\n", msg.Key, msg.Value)
		}
	}
}

func getPassword() string {
	for {
		fmt.Print("Password: ")
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			continue
		}
		fmt.Println("")

		return strings.TrimRight(string(pwBytes), "\r\n")
	}
}

func getName() string {
	suggestion := util.GetRandomName()
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Name [%s]: ", suggestion)
		str, err := reader.ReadString('\n')
		if err != nil {
			logrus.WithError(err).Warn("could not read name")
			return ""
		}

		str = strings.TrimRight(str, "\r\n")
		if str == "" {
			str = suggestion
		}

		if err := model.ValidateName(str); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			continue
		}

		return str
	}
}
