package main

type Kind int

const (
	KindNone Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

type Color int

const (
	Light Color = iota
	Dark
)

// Piece is a tagged value: Kind plus, for non-empty squares, Color.
// The zero value is the empty square.
type Piece struct {
	Kind  Kind
	Color Color
}

func NewPiece(kind Kind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == KindNone
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

func (k Kind) Letter() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "."
	}
}

func (c Color) String() string {
	if c == Light {
		return "Light"
	}
	return "Dark"
}

func otherColor(color Color) Color {
	if color == Light {
		return Dark
	}
	return Light
}
