package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"

	"holdem-server/internal/jwt"
	"holdem-server/pkg/model"
	"holdem-server/pkg/room"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
)

// playerHeader echoes the authenticated player name
const playerHeader = "Holdem-Player"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	players *model.Store
	dealer  *room.Dealer

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
// The dealer must already be on shift
func NewMux(version string, players *model.Store, dealer *room.Dealer) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		players: players,
		dealer:  dealer,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/player/auth").Handler(this.postPlayerAuth())
	}

	// requires bearer authorization
	{
		r := this.authRouter
		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodGet).Path("/table/ws").Handler(this.getTableWS())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		name, err := jwt.ValidName(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, name)
		w.Header().Set(playerHeader, name)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func playerName(r *http.Request) string {
	return r.Context().Value(ctxPlayerKey).(string)
}
