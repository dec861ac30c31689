package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"luckygates/internal/config"
	"luckygates/internal/logger"
	"luckygates/internal/prefs"
	"luckygates/internal/ui"
	"luckygates/internal/wallet"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	// Missing .env is fine, keys can come from the environment directly.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	defer logger.Close()

	var w wallet.Provider
	signer, err := wallet.FromEnv(cfg.Wallet.KeyEnv)
	if err != nil {
		logger.LogInfo("No signing key (%v), running unbound", err)
		w = wallet.None{}
	} else {
		w = signer
	}

	var store prefs.Store
	if cfg.Redis.Addr != "" {
		store = prefs.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	} else {
		store = prefs.NewMemoryStore()
	}

	m := ui.NewApp(cfg, w, store)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running client: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
