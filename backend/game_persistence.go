package main

import (
	"encoding/gob"
	"io"
	"log"
	"os"
	"path/filepath"
)

// gameDump is the on-disk shape of a game in progress. The board grid
// is flattened so the dump carries only exported fields.
type gameDump struct {
	Settings        GameSettings
	Cells           []Piece
	ToMove          Color
	Status          GameStatus
	CapturedByLight CaptureTally
	CapturedByDark  CaptureTally
	HasLastMove     bool
	LastMove        Move
	History         []HistoryEntry
}

func saveGame(controller *GameController) {
	config := GetConfig()
	if !config.PersistGames {
		return
	}
	settings, state, entries := controller.Snapshot()
	if err := ensureSaveDir(config.SavePath); err != nil {
		log.Printf("[backend] ensure save dir: %v", err)
		return
	}
	if err := writeGameDump(config.SavePath, settings, state, entries); err != nil {
		log.Printf("[backend] persist game: %v", err)
	}
}

func writeGameDump(path string, settings GameSettings, state GameState, entries []HistoryEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	dump := gameDump{
		Settings:        settings,
		Cells:           append([]Piece(nil), state.Board.cells[:]...),
		ToMove:          state.ToMove,
		Status:          state.Status,
		CapturedByLight: state.CapturedByLight,
		CapturedByDark:  state.CapturedByDark,
		HasLastMove:     state.HasLastMove,
		LastMove:        state.LastMove,
		History:         entries,
	}
	enc := gob.NewEncoder(file)
	return enc.Encode(&dump)
}

func loadSavedGame(controller *GameController) {
	config := GetConfig()
	if !config.PersistGames {
		return
	}
	if err := readGameDump(config.SavePath, controller); err != nil {
		log.Printf("[backend] load saved game: %v", err)
	}
}

func readGameDump(path string, controller *GameController) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()
	var dump gameDump
	if err := gob.NewDecoder(file).Decode(&dump); err != nil {
		if isEOFError(err) {
			file.Close()
			os.Remove(path)
			return nil
		}
		return err
	}
	if len(dump.Cells) != boardSize*boardSize {
		os.Remove(path)
		return nil
	}
	state := GameState{
		ToMove:          dump.ToMove,
		Status:          dump.Status,
		CapturedByLight: dump.CapturedByLight,
		CapturedByDark:  dump.CapturedByDark,
		HasLastMove:     dump.HasLastMove,
		LastMove:        dump.LastMove,
	}
	copy(state.Board.cells[:], dump.Cells)
	controller.Restore(dump.Settings, state, dump.History)
	return nil
}

func ensureSaveDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func isEOFError(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
