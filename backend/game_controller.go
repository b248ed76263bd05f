package main

import "sync"

// GameController serializes access to the game for the HTTP and
// websocket layers. The lock also guarantees no reader observes the
// board mid-simulation inside a legality check.
type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) ApplyMove(move Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TryApplyMove(move)
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	history := gc.game.History()
	if history.Size() == 0 {
		return HistoryEntry{}, false
	}
	entries := history.All()
	return entries[len(entries)-1], true
}

func (gc *GameController) CurrentTurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
}

// Snapshot and Restore exist for game persistence across restarts.

func (gc *GameController) Snapshot() (GameSettings, GameState, []HistoryEntry) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings(), gc.game.State(), gc.game.History().All()
}

func (gc *GameController) Restore(settings GameSettings, state GameState, entries []HistoryEntry) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.state = state
	for _, entry := range entries {
		gc.game.history.Push(entry)
	}
}
