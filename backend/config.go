package main

import (
	"fmt"
	"os"
	"sync"
)

type Config struct {
	ListenAddr        string `json:"listen_addr"`
	LogMoves          bool   `json:"log_moves"`
	PersistGames      bool   `json:"persist_games"`
	SavePath          string `json:"save_path"`
	WsIdlePingSec     int    `json:"ws_idle_ping_sec"`
	FlickerIntervalMs int    `json:"flicker_interval_ms"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

// DefaultConfig seeds from the environment; godotenv autoload in main
// lets a local .env provide these without exporting anything.
func DefaultConfig() Config {
	return Config{
		ListenAddr:        getenv("CHESS_ADDR", ":8080"),
		LogMoves:          getenvBool("CHESS_LOG_MOVES", true),
		PersistGames:      getenvBool("CHESS_PERSIST_GAMES", true),
		SavePath:          getenv("CHESS_SAVE_PATH", "data/saved_game.gob"),
		WsIdlePingSec:     getenvInt("CHESS_WS_IDLE_PING_SEC", 30),
		FlickerIntervalMs: getenvInt("CHESS_FLICKER_INTERVAL_MS", 400),
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}
