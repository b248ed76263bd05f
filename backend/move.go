package main

import "fmt"

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (s Square) IsValid() bool {
	return s.Row >= 0 && s.Col >= 0 && s.Row < boardSize && s.Col < boardSize
}

func (s Square) Equals(other Square) bool {
	return s.Row == other.Row && s.Col == other.Col
}

// String renders algebraic notation: row 0 is rank 8, col 0 is file a.
func (s Square) String() string {
	if !s.IsValid() {
		return "??"
	}
	return fmt.Sprintf("%c%c", 'a'+s.Col, '0'+(boardSize-s.Row))
}

// ParseSquare maps algebraic notation like "e4" onto board coordinates.
// Squares reaching the engine are always produced here, so engine code
// never re-validates bounds.
func ParseSquare(pos string) (Square, bool) {
	if len(pos) != 2 {
		return Square{}, false
	}
	file := pos[0]
	rank := pos[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: boardSize - int(rank-'0'), Col: int(file - 'a')}, true
}

func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid()
}

func (m Move) Equals(other Move) bool {
	return m.From.Equals(other.From) && m.To.Equals(other.To)
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}
