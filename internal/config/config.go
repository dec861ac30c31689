package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
	Redis  RedisConfig  `yaml:"redis"`
	Wallet WalletConfig `yaml:"wallet"`
}

// ServerConfig locates the game authority.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// URL returns the websocket endpoint of the authority.
func (c *ServerConfig) URL() string {
	return fmt.Sprintf("ws://%s:%d/ws", c.Host, c.Port)
}

// GameConfig pins the economic identity of sessions this client creates and
// joins, plus the lobby countdown length used for the progress projection.
type GameConfig struct {
	CoinAddress   string `yaml:"coin_address"`
	ChainName     string `yaml:"chain_name"`
	StageDuration int    `yaml:"stage_duration"` // lobby countdown length (seconds)
}

// RedisConfig is optional; with no addr the preference store stays in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// WalletConfig names the environment variable holding the signing key. The
// key itself never lives in the yaml file.
type WalletConfig struct {
	KeyEnv string `yaml:"key_env"`
}

// Load reads the config file and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Game.CoinAddress == "" {
		cfg.Game.CoinAddress = "0x64F36701138f0E85cC10c34Ea535FdBADcB54147"
	}
	if cfg.Game.ChainName == "" {
		cfg.Game.ChainName = "BSC"
	}
	if cfg.Game.StageDuration == 0 {
		cfg.Game.StageDuration = 120
	}
	if cfg.Wallet.KeyEnv == "" {
		cfg.Wallet.KeyEnv = "LUCKY_GATES_KEY"
	}
}
