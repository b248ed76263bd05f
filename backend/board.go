package main

const boardSize = 8

var backRankOrder = [boardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of pieces. Row 0 is the back rank of the color
// placed on top at setup; rows increase toward the other side.
type Board struct {
	cells [boardSize * boardSize]Piece
}

func NewBoard(top Color) Board {
	b := Board{}
	b.Reset(top)
	return b
}

func (b *Board) Reset(top Color) {
	b.cells = [boardSize * boardSize]Piece{}
	bottom := otherColor(top)
	for col := 0; col < boardSize; col++ {
		b.Set(Square{Row: 0, Col: col}, NewPiece(backRankOrder[col], top))
		b.Set(Square{Row: 1, Col: col}, NewPiece(Pawn, top))
		b.Set(Square{Row: 6, Col: col}, NewPiece(Pawn, bottom))
		b.Set(Square{Row: 7, Col: col}, NewPiece(backRankOrder[col], bottom))
	}
}

func (b *Board) At(sq Square) Piece {
	return b.cells[b.index(sq)]
}

func (b *Board) Set(sq Square, piece Piece) {
	b.cells[b.index(sq)] = piece
}

func (b *Board) Remove(sq Square) {
	b.cells[b.index(sq)] = Piece{}
}

func (b *Board) InBounds(sq Square) bool {
	return sq.Row >= 0 && sq.Col >= 0 && sq.Row < boardSize && sq.Col < boardSize
}

func (b *Board) IsEmpty(sq Square) bool {
	return b.InBounds(sq) && b.At(sq).IsEmpty()
}

func (b *Board) Clone() Board {
	return *b
}

// FindKing scans for the unique king of the given color.
func (b *Board) FindKing(color Color) (Square, bool) {
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			sq := Square{Row: row, Col: col}
			piece := b.At(sq)
			if piece.Kind == King && piece.Color == color {
				return sq, true
			}
		}
	}
	return Square{}, false
}

func (b *Board) index(sq Square) int {
	return sq.Row*boardSize + sq.Col
}
