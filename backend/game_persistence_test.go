package main

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGameDumpRoundTrip(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	controller.StartGame(DefaultGameSettings())
	controller.ApplyMove(Move{From: Square{6, 4}, To: Square{4, 4}})
	controller.ApplyMove(Move{From: Square{1, 3}, To: Square{3, 3}})
	controller.ApplyMove(Move{From: Square{4, 4}, To: Square{3, 3}})

	path := filepath.Join(t.TempDir(), "saved_game.gob")
	settings, state, entries := controller.Snapshot()
	if err := writeGameDump(path, settings, state, entries); err != nil {
		t.Fatalf("write dump: %v", err)
	}

	restored := NewGameController(DefaultGameSettings())
	if err := readGameDump(path, restored); err != nil {
		t.Fatalf("read dump: %v", err)
	}

	if diff := cmp.Diff(state, restored.State(), cmp.AllowUnexported(Board{})); diff != "" {
		t.Fatalf("restored state (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(entries, restored.History().All()); diff != "" {
		t.Fatalf("restored history (-want +got):\n%s", diff)
	}
	if restored.Settings() != settings {
		t.Fatalf("settings not restored: %+v", restored.Settings())
	}
}

func TestReadGameDumpMissingFile(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	path := filepath.Join(t.TempDir(), "nope.gob")
	if err := readGameDump(path, controller); err != nil {
		t.Fatalf("missing file should be silent, got %v", err)
	}
	if controller.State().Status != StatusNotStarted {
		t.Fatalf("missing file changed the game")
	}
}

func TestReadGameDumpDiscardsEmptyFile(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	path := filepath.Join(t.TempDir(), "saved_game.gob")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed empty file: %v", err)
	}
	if err := readGameDump(path, controller); err != nil {
		t.Fatalf("empty file should be discarded, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("empty dump file was not removed")
	}
}

func TestReadGameDumpDiscardsShortBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_game.gob")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create dump: %v", err)
	}
	dump := gameDump{
		Settings: DefaultGameSettings(),
		Cells:    make([]Piece, 12),
		ToMove:   Light,
		Status:   StatusPlaying,
	}
	if err := gob.NewEncoder(file).Encode(&dump); err != nil {
		t.Fatalf("encode dump: %v", err)
	}
	file.Close()

	fresh := NewGameController(DefaultGameSettings())
	if err := readGameDump(path, fresh); err != nil {
		t.Fatalf("short grid should be discarded, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("short dump file was not removed")
	}
	if fresh.State().Status != StatusNotStarted {
		t.Fatalf("short dump changed the game")
	}
}
