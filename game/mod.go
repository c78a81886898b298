package game

import (
	"errors"
	"math"
)

// Side identifies a player. The First side (chess White, tic-tac-toe X) maximizes
// absolute scores, the Second side minimizes them.
type Side int

const (
	First Side = iota
	Second
)

func (s Side) Opponent() Side {
	if s == First {
		return Second
	}
	return First
}

// Sign converts an absolute score into the side's own perspective
func (s Side) Sign() float64 {
	if s == First {
		return 1
	}
	return -1
}

// Coord is a zero-based grid coordinate, row 0 being the top row as printed
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

type Move interface {
	String() string
}

type Outcome int

const (
	NoOutcome Outcome = iota
	FirstWon
	SecondWon
	DrawOutcome
)

func (o Outcome) String() string {
	switch o {
	case FirstWon:
		return "first"
	case SecondWon:
		return "second"
	case DrawOutcome:
		return "draw"
	default:
		return "none"
	}
}

// Scores of positions without legal moves, from the mover's perspective.
// Loss is finite so a root whose every move loses still reports a move.
const (
	Loss = -math.MaxFloat64
	Draw = 0.0
)

// ErrIllegalMove rejects a well-formed move that the rules do not allow
var ErrIllegalMove = errors.New("illegal move")

// State should be immutable - Play always returns a new copy
type State interface {
	Turn() Side
	LegalMoves() []Move
	Play(Move) State
	// Terminal scores a position with no legal moves from the mover's perspective,
	// ply being the number of half-moves played since the search root.
	Terminal(ply int) float64
	Outcome() Outcome
}

// Evaluates a position from the First side's absolute perspective. The searcher
// applies the mover's sign.
type Evaluate func(State) float64
