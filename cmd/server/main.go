package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"
	"holdem-server/internal/jwt"
	"holdem-server/internal/mux"
	"holdem-server/internal/rng"
	"holdem-server/pkg/model"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/room"
	"holdem-server/pkg/token"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configured addr")

func main() {
	flag.Parse()

	// a missing .env is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not load .env")
	}

	setupLogger()
	cfg := config.Instance()

	// fail fast
	secret, err := token.Secret(cfg.JWT.Secret)
	if err != nil {
		logrus.WithError(err).Fatal("could not create jwt secret")
	}

	if cfg.JWT.Secret == "" {
		logrus.Warn("no jwt secret configured, sessions will not survive a restart")
	}

	jwt.SetSecret(secret)

	game, err := texasholdem.NewGame(logrus.StandardLogger(), newGenerator(cfg), texasholdem.Options{
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		MinBuyIn:      cfg.Table.MinBuyIn,
		DebugCommands: cfg.DebugCommands,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	dealer := room.NewDealer(logrus.StandardLogger(), game)
	dealer.StartShift()
	defer dealer.EndShift()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listen := cfg.Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, model.NewStore(), dealer))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":       srv.Addr,
		"smallBlind": cfg.Table.SmallBlind,
		"bigBlind":   cfg.Table.BigBlind,
		"debug":      cfg.DebugCommands,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// newGenerator returns the shuffle source for the deck
func newGenerator(cfg config.Config) rng.Generator {
	if cfg.CryptoShuffle {
		return rng.Crypto{}
	}

	gen := rng.NewSeeded(0)
	logrus.WithField("seed", gen.Seed()).Debug("using seeded shuffle")
	return gen
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
