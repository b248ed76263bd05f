package main

import "testing"

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("CHESS_ADDR", ":9191")
	t.Setenv("CHESS_LOG_MOVES", "false")
	t.Setenv("CHESS_WS_IDLE_PING_SEC", "7")
	t.Setenv("CHESS_FLICKER_INTERVAL_MS", "not-a-number")

	config := DefaultConfig()
	if config.ListenAddr != ":9191" {
		t.Fatalf("listen addr: got %q", config.ListenAddr)
	}
	if config.LogMoves {
		t.Fatalf("log moves should be off")
	}
	if config.WsIdlePingSec != 7 {
		t.Fatalf("ws idle ping: got %d", config.WsIdlePingSec)
	}
	if config.FlickerIntervalMs != 400 {
		t.Fatalf("garbage int should fall back, got %d", config.FlickerIntervalMs)
	}
}

func TestConfigStoreUpdate(t *testing.T) {
	store := &ConfigStore{config: DefaultConfig()}
	updated := store.Get()
	updated.LogMoves = false
	updated.SavePath = "elsewhere/game.gob"
	store.Update(updated)

	got := store.Get()
	if got.LogMoves || got.SavePath != "elsewhere/game.gob" {
		t.Fatalf("update not visible: %+v", got)
	}
}

func TestGetenvBool(t *testing.T) {
	t.Setenv("CHESS_TEST_FLAG", "yes")
	if !getenvBool("CHESS_TEST_FLAG", false) {
		t.Fatalf("yes should parse as true")
	}
	t.Setenv("CHESS_TEST_FLAG", "0")
	if getenvBool("CHESS_TEST_FLAG", true) {
		t.Fatalf("0 should parse as false")
	}
	t.Setenv("CHESS_TEST_FLAG", "maybe")
	if !getenvBool("CHESS_TEST_FLAG", true) {
		t.Fatalf("garbage should fall back")
	}
}
