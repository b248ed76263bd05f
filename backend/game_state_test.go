package main

import "testing"

func TestGameStateResetGivesFirstMoveToBottom(t *testing.T) {
	state := GameState{}
	state.Reset(GameSettings{TopColor: Dark})
	if state.ToMove != Light {
		t.Fatalf("expected light to open, got %s", state.ToMove)
	}
	state.Reset(GameSettings{TopColor: Light})
	if state.ToMove != Dark {
		t.Fatalf("expected dark to open with light on top, got %s", state.ToMove)
	}
}

func TestGameStateRunning(t *testing.T) {
	state := GameState{}
	for status, want := range map[GameStatus]bool{
		StatusNotStarted: false,
		StatusPlaying:    true,
		StatusCheck:      true,
		StatusCheckmate:  false,
		StatusStalemate:  false,
	} {
		state.Status = status
		if state.Running() != want {
			t.Fatalf("Running() with %s: expected %v", status, want)
		}
	}
}

func TestWinnerOnlyAtCheckmate(t *testing.T) {
	state := GameState{Status: StatusPlaying, ToMove: Dark}
	if _, ok := state.Winner(); ok {
		t.Fatalf("winner reported mid-game")
	}
	// Checkmate is classified for the side to move, so the winner is
	// the other side.
	state.Status = StatusCheckmate
	winner, ok := state.Winner()
	if !ok || winner != Light {
		t.Fatalf("expected light winner, got %s ok=%v", winner, ok)
	}
	state.Status = StatusStalemate
	if _, ok := state.Winner(); ok {
		t.Fatalf("stalemate has no winner")
	}
}

func TestCaptureTally(t *testing.T) {
	tally := CaptureTally{}
	tally.Add(Pawn)
	tally.Add(Pawn)
	tally.Add(Queen)
	tally.Add(King) // kings are never captured; Add must ignore it
	if tally.Pawns != 2 || tally.Queens != 1 {
		t.Fatalf("tally wrong: %+v", tally)
	}
	if tally.Total() != 3 {
		t.Fatalf("expected total 3, got %d", tally.Total())
	}
	if tally.Count(Knight) != 0 || tally.Count(Pawn) != 2 {
		t.Fatalf("count wrong: %+v", tally)
	}
}

func TestMoveHistory(t *testing.T) {
	history := MoveHistory{}
	history.Push(HistoryEntry{Player: Light})
	history.Push(HistoryEntry{Player: Dark})
	if history.Size() != 2 {
		t.Fatalf("expected size 2, got %d", history.Size())
	}

	entries := history.All()
	entries[0].Player = Dark
	if history.All()[0].Player != Light {
		t.Fatalf("All() leaked the backing slice")
	}

	history.Clear()
	if history.Size() != 0 {
		t.Fatalf("clear left %d entries", history.Size())
	}
}
