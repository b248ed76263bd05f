package main

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var straightDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var diagonalDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

// forwardDir is the row delta a pawn of the given color advances by.
// The color placed on top moves toward increasing rows.
func (r Rules) forwardDir(color Color) int {
	if color == r.settings.TopColor {
		return 1
	}
	return -1
}

func (r Rules) pawnStartRow(color Color) int {
	if color == r.settings.TopColor {
		return 1
	}
	return boardSize - 2
}

// ValidateGeometry checks the moving piece's shape and path rules,
// ignoring check implications. The source square must be non-empty.
func (r Rules) ValidateGeometry(board *Board, from, to Square) bool {
	piece := board.At(from)
	if piece.IsEmpty() {
		return false
	}
	target := board.At(to)
	if !target.IsEmpty() && target.Color == piece.Color {
		return false
	}

	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	switch piece.Kind {
	case Pawn:
		dir := r.forwardDir(piece.Color)
		if colDiff == 0 && rowDiff == dir && target.IsEmpty() {
			return true
		}
		if colDiff == 0 && rowDiff == 2*dir && from.Row == r.pawnStartRow(piece.Color) {
			mid := Square{Row: from.Row + dir, Col: from.Col}
			return board.At(mid).IsEmpty() && target.IsEmpty()
		}
		// Diagonal steps are capture-only.
		if (colDiff == 1 || colDiff == -1) && rowDiff == dir && !target.IsEmpty() {
			return true
		}
		return false
	case Knight:
		return (abs(rowDiff) == 2 && abs(colDiff) == 1) || (abs(rowDiff) == 1 && abs(colDiff) == 2)
	case King:
		return abs(rowDiff) <= 1 && abs(colDiff) <= 1 && (rowDiff != 0 || colDiff != 0)
	case Rook:
		if (rowDiff == 0) == (colDiff == 0) {
			return false
		}
		return r.pathClear(board, from, to)
	case Bishop:
		if abs(rowDiff) != abs(colDiff) || rowDiff == 0 {
			return false
		}
		return r.pathClear(board, from, to)
	case Queen:
		straight := (rowDiff == 0) != (colDiff == 0)
		diagonal := abs(rowDiff) == abs(colDiff) && rowDiff != 0
		if !straight && !diagonal {
			return false
		}
		return r.pathClear(board, from, to)
	}
	return false
}

// pathClear walks the strictly-intervening squares of a straight or
// diagonal line. The destination square is never inspected here; an
// enemy piece there is a capture, not a blocker.
func (r Rules) pathClear(board *Board, from, to Square) bool {
	stepRow := sign(to.Row - from.Row)
	stepCol := sign(to.Col - from.Col)
	sq := Square{Row: from.Row + stepRow, Col: from.Col + stepCol}
	for !sq.Equals(to) {
		if !board.At(sq).IsEmpty() {
			return false
		}
		sq.Row += stepRow
		sq.Col += stepCol
	}
	return true
}

// IsAttacked reports whether any piece of the given color threatens the
// square. Each threat category scans outward from the square itself, so
// the query works for any color combination and never mutates the board.
func (r Rules) IsAttacked(board *Board, sq Square, by Color) bool {
	for _, offset := range knightOffsets {
		probe := Square{Row: sq.Row + offset[0], Col: sq.Col + offset[1]}
		if !board.InBounds(probe) {
			continue
		}
		piece := board.At(probe)
		if piece.Kind == Knight && piece.Color == by {
			return true
		}
	}

	for _, dir := range straightDirections {
		if piece, ok := r.firstPieceAlong(board, sq, dir[0], dir[1]); ok && piece.Color == by {
			if piece.Kind == Rook || piece.Kind == Queen {
				return true
			}
		}
	}

	for _, dir := range diagonalDirections {
		if piece, ok := r.firstPieceAlong(board, sq, dir[0], dir[1]); ok && piece.Color == by {
			if piece.Kind == Bishop || piece.Kind == Queen {
				return true
			}
		}
	}

	// An enemy pawn captures onto sq from one row behind it, relative to
	// the pawn's own forward direction.
	pawnRow := sq.Row - r.forwardDir(by)
	for _, colOffset := range [2]int{-1, 1} {
		probe := Square{Row: pawnRow, Col: sq.Col + colOffset}
		if !board.InBounds(probe) {
			continue
		}
		piece := board.At(probe)
		if piece.Kind == Pawn && piece.Color == by {
			return true
		}
	}

	for _, offset := range kingOffsets {
		probe := Square{Row: sq.Row + offset[0], Col: sq.Col + offset[1]}
		if !board.InBounds(probe) {
			continue
		}
		piece := board.At(probe)
		if piece.Kind == King && piece.Color == by {
			return true
		}
	}

	return false
}

func (r Rules) firstPieceAlong(board *Board, from Square, stepRow, stepCol int) (Piece, bool) {
	sq := Square{Row: from.Row + stepRow, Col: from.Col + stepCol}
	for board.InBounds(sq) {
		piece := board.At(sq)
		if !piece.IsEmpty() {
			return piece, true
		}
		sq.Row += stepRow
		sq.Col += stepCol
	}
	return Piece{}, false
}

// IsSafeMove is the full per-move legality verdict: the geometry must
// permit the move and the mover's own king must not be attacked after
// it. The board is mutated transiently and restored before returning,
// whatever the outcome.
func (r Rules) IsSafeMove(board *Board, from, to Square) bool {
	if !r.ValidateGeometry(board, from, to) {
		return false
	}

	moving := board.At(from)
	captured := board.At(to)
	board.Set(to, moving)
	board.Remove(from)

	kingSq, found := board.FindKing(moving.Color)
	attacked := false
	if found {
		attacked = r.IsAttacked(board, kingSq, otherColor(moving.Color))
	}

	board.Set(from, moving)
	board.Set(to, captured)

	if !found {
		// The no-self-check rule keeps both kings on the board; a missing
		// king means the position was corrupted outside the engine.
		panic("rules: no " + moving.Color.String() + " king on board")
	}
	return !attacked
}

// HasAnyLegalMove probes every (from, to) pair for the color. 64x64
// safety checks worst case, which is nothing at this board size.
func (r Rules) HasAnyLegalMove(board *Board, color Color) bool {
	for fromRow := 0; fromRow < boardSize; fromRow++ {
		for fromCol := 0; fromCol < boardSize; fromCol++ {
			from := Square{Row: fromRow, Col: fromCol}
			piece := board.At(from)
			if piece.IsEmpty() || piece.Color != color {
				continue
			}
			for toRow := 0; toRow < boardSize; toRow++ {
				for toCol := 0; toCol < boardSize; toCol++ {
					if r.IsSafeMove(board, from, Square{Row: toRow, Col: toCol}) {
						return true
					}
				}
			}
		}
	}
	return false
}

// Classify determines the status for the side about to move.
func (r Rules) Classify(board *Board, color Color) GameStatus {
	kingSq, found := board.FindKing(color)
	if !found {
		panic("rules: no " + color.String() + " king on board")
	}
	inCheck := r.IsAttacked(board, kingSq, otherColor(color))
	hasMoves := r.HasAnyLegalMove(board, color)
	switch {
	case inCheck && !hasMoves:
		return StatusCheckmate
	case inCheck:
		return StatusCheck
	case !hasMoves:
		return StatusStalemate
	default:
		return StatusPlaying
	}
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

func sign(value int) int {
	if value > 0 {
		return 1
	}
	if value < 0 {
		return -1
	}
	return 0
}
