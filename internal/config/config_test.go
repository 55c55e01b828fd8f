package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_JWT_SECRET", "from-env")
	defer clear2()
	clear3 := util.SetEnv("HOLDEM_TABLE_BIG_BLIND", "100")
	defer clear3()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":6000", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(25, cfg.Table.SmallBlind)
	a.Equal(100, cfg.Table.BigBlind)
	a.Equal(2000, cfg.Table.MinBuyIn)
	a.Equal("from-env", cfg.JWT.Secret)
	a.True(cfg.DebugCommands)
	a.False(cfg.CryptoShuffle)

	// ensure that it's only loaded once
	clear4 := util.SetEnv("HOLDEM_JWT_SECRET", "changed")
	defer clear4()
	// ensure we aren't using a pointer
	cfg.JWT.Secret = "bad"
	cfg = Instance()
	a.Equal("from-env", cfg.JWT.Secret)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, Default().Table, cfg.Table)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.JWT.Secret)
}
