package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "ws://localhost:3000/ws", cfg.Server.URL())
	assert.Equal(t, "BSC", cfg.Game.ChainName)
	assert.Equal(t, 120, cfg.Game.StageDuration)
	assert.Equal(t, "LUCKY_GATES_KEY", cfg.Wallet.KeyEnv)
	assert.Empty(t, cfg.Redis.Addr, "redis is opt-in")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: game.example.com
  port: 8443
game:
  chain_name: ETH
redis:
  addr: localhost:6379
  db: 2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ws://game.example.com:8443/ws", cfg.Server.URL())
	assert.Equal(t, "ETH", cfg.Game.ChainName)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)

	// Unset fields fall back to defaults.
	assert.Equal(t, "0x64F36701138f0E85cC10c34Ea535FdBADcB54147", cfg.Game.CoinAddress)
	assert.Equal(t, 120, cfg.Game.StageDuration)
	assert.Equal(t, "LUCKY_GATES_KEY", cfg.Wallet.KeyEnv)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
