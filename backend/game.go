package main

import (
	"log"
	"time"
)

type Game struct {
	settings  GameSettings
	rules     Rules
	state     GameState
	history   MoveHistory
	turnStart time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusPlaying
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove validates the move for the side to move, commits it on
// acceptance and reclassifies the game for the opponent. Rejection is a
// single opaque signal; callers never learn whether the shape, the path
// or a self-check killed the move.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if !g.state.Running() {
		return false, "game not running"
	}
	mover := g.state.ToMove
	piece := g.state.Board.At(move.From)
	if piece.IsEmpty() {
		g.state.LastMessage = "Illegal move: no piece on source square"
		return false, g.state.LastMessage
	}
	if piece.Color != mover {
		g.state.LastMessage = "Illegal move: not your piece"
		return false, g.state.LastMessage
	}
	if !g.rules.IsSafeMove(&g.state.Board, move.From, move.To) {
		g.state.LastMessage = "Illegal move"
		return false, g.state.LastMessage
	}

	g.state.LastMessage = ""
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	captured := g.state.Board.At(move.To)

	// The commit is the only observable board transition; the safety
	// simulation above already restored the previous position.
	g.state.Board.Set(move.To, piece)
	g.state.Board.Remove(move.From)
	g.state.LastMove = move
	g.state.HasLastMove = true

	if !captured.IsEmpty() {
		g.state.tallyFor(mover).Add(captured.Kind)
	}
	g.history.Push(HistoryEntry{
		Move:      move,
		Player:    mover,
		Captured:  captured.Kind,
		ElapsedMs: elapsedMs,
	})
	g.logMovePlayed(move, mover, captured.Kind, elapsedMs)

	opponent := otherColor(mover)
	g.state.ToMove = opponent
	g.state.Status = g.rules.Classify(&g.state.Board, opponent)
	if g.state.Status == StatusCheckmate || g.state.Status == StatusStalemate {
		g.logGameOver(g.state.Status, mover)
	}
	g.turnStart = time.Now()
	return true, ""
}

func (g *Game) logMovePlayed(move Move, player Color, captured Kind, elapsedMs float64) {
	if !GetConfig().LogMoves {
		return
	}
	if captured == KindNone {
		log.Printf("[backend] %s played %s (%.0fms)", player, move, elapsedMs)
		return
	}
	log.Printf("[backend] %s played %s taking %s (%.0fms)", player, move, captured, elapsedMs)
}

func (g *Game) logGameOver(status GameStatus, lastMover Color) {
	if status == StatusCheckmate {
		log.Printf("[backend] checkmate, %s wins", lastMover)
		return
	}
	log.Printf("[backend] stalemate, game drawn")
}
