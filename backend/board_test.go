package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoardStandardStartingPosition(t *testing.T) {
	b := NewBoard(Dark)

	for col := 0; col < boardSize; col++ {
		top := b.At(Square{Row: 0, Col: col})
		if top.Kind != backRankOrder[col] || top.Color != Dark {
			t.Fatalf("row 0 col %d: expected dark %s, got %s %s", col, backRankOrder[col], top.Color, top.Kind)
		}
		bottom := b.At(Square{Row: 7, Col: col})
		if bottom.Kind != backRankOrder[col] || bottom.Color != Light {
			t.Fatalf("row 7 col %d: expected light %s, got %s %s", col, backRankOrder[col], bottom.Color, bottom.Kind)
		}
		if p := b.At(Square{Row: 1, Col: col}); p.Kind != Pawn || p.Color != Dark {
			t.Fatalf("row 1 col %d: expected dark pawn, got %s %s", col, p.Color, p.Kind)
		}
		if p := b.At(Square{Row: 6, Col: col}); p.Kind != Pawn || p.Color != Light {
			t.Fatalf("row 6 col %d: expected light pawn, got %s %s", col, p.Color, p.Kind)
		}
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < boardSize; col++ {
			if !b.At(Square{Row: row, Col: col}).IsEmpty() {
				t.Fatalf("expected row %d col %d to be empty", row, col)
			}
		}
	}
}

func TestNewBoardTopColorFlips(t *testing.T) {
	b := NewBoard(Light)
	if p := b.At(Square{Row: 0, Col: 4}); p.Kind != King || p.Color != Light {
		t.Fatalf("expected light king on row 0, got %s %s", p.Color, p.Kind)
	}
	if p := b.At(Square{Row: 7, Col: 4}); p.Kind != King || p.Color != Dark {
		t.Fatalf("expected dark king on row 7, got %s %s", p.Color, p.Kind)
	}
}

func TestFindKing(t *testing.T) {
	b := NewBoard(Dark)
	darkKing, ok := b.FindKing(Dark)
	if !ok || !darkKing.Equals(Square{Row: 0, Col: 4}) {
		t.Fatalf("expected dark king at e8, got %v found=%v", darkKing, ok)
	}
	lightKing, ok := b.FindKing(Light)
	if !ok || !lightKing.Equals(Square{Row: 7, Col: 4}) {
		t.Fatalf("expected light king at e1, got %v found=%v", lightKing, ok)
	}

	empty := Board{}
	if _, ok := empty.FindKing(Light); ok {
		t.Fatalf("expected no king on an empty board")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(Dark)
	clone := b.Clone()
	clone.Remove(Square{Row: 0, Col: 4})
	if b.At(Square{Row: 0, Col: 4}).Kind != King {
		t.Fatalf("expected original board to keep its king after mutating the clone")
	}
	restored := NewBoard(Dark)
	if diff := cmp.Diff(restored, b, cmp.AllowUnexported(Board{})); diff != "" {
		t.Fatalf("original board changed (-want +got):\n%s", diff)
	}
}
