package main

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusPlaying
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// CaptureTally counts captured enemy pieces per kind. Purely
// observational; legality logic never reads it.
type CaptureTally struct {
	Pawns   int `json:"pawns"`
	Knights int `json:"knights"`
	Bishops int `json:"bishops"`
	Rooks   int `json:"rooks"`
	Queens  int `json:"queens"`
}

func (t *CaptureTally) Add(kind Kind) {
	switch kind {
	case Pawn:
		t.Pawns++
	case Knight:
		t.Knights++
	case Bishop:
		t.Bishops++
	case Rook:
		t.Rooks++
	case Queen:
		t.Queens++
	}
}

func (t CaptureTally) Count(kind Kind) int {
	switch kind {
	case Pawn:
		return t.Pawns
	case Knight:
		return t.Knights
	case Bishop:
		return t.Bishops
	case Rook:
		return t.Rooks
	case Queen:
		return t.Queens
	default:
		return 0
	}
}

func (t CaptureTally) Total() int {
	return t.Pawns + t.Knights + t.Bishops + t.Rooks + t.Queens
}

type GameState struct {
	Board           Board
	ToMove          Color
	Status          GameStatus
	CapturedByLight CaptureTally
	CapturedByDark  CaptureTally
	HasLastMove     bool
	LastMove        Move
	LastMessage     string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.TopColor)
	s.ToMove = otherColor(settings.TopColor)
	s.Status = StatusNotStarted
	s.CapturedByLight = CaptureTally{}
	s.CapturedByDark = CaptureTally{}
	s.HasLastMove = false
	s.LastMove = Move{}
	s.LastMessage = ""
}

func (s GameState) Clone() GameState {
	return s
}

func (s GameState) Running() bool {
	return s.Status == StatusPlaying || s.Status == StatusCheck
}

func (s *GameState) tallyFor(color Color) *CaptureTally {
	if color == Light {
		return &s.CapturedByLight
	}
	return &s.CapturedByDark
}

// Winner is defined only at checkmate: the side that delivered it.
func (s GameState) Winner() (Color, bool) {
	if s.Status != StatusCheckmate {
		return Light, false
	}
	return otherColor(s.ToMove), true
}

func (status GameStatus) String() string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "playing"
	}
}
