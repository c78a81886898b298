package tictactoe

import (
	"boardgames/game"
	"boardgames/notation"
	"fmt"
	"strings"
)

const Size = 3

// WinScore is the score of a win on the very first ply. Every further ply costs a
// point so quicker wins and slower losses are preferred.
const WinScore = 100

type Mark int8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

func (m Mark) Side() game.Side {
	if m == O {
		return game.Second
	}
	return game.First
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Move places the mover's mark on a cell
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return notation.EncodeCell(game.Coord(m))
}

// ParseMove decodes a cell such as "b2" (column b, row 2)
func ParseMove(s string) (Move, error) {
	c, err := notation.DecodeCell(s, Size, Size)
	if err != nil {
		return Move{}, err
	}
	return Move(c), nil
}

// ReadMove parses a cell typed by a player and checks that it is free
func ReadMove(state game.State, input string) (game.Move, error) {
	b, ok := state.(*Board)
	if !ok {
		return nil, fmt.Errorf("unexpected state type %T", state)
	}
	m, err := ParseMove(input)
	if err != nil {
		return nil, err
	}
	if !b.IsValidMove(m.Row, m.Col) {
		return nil, fmt.Errorf("%w: %s is taken", game.ErrIllegalMove, m)
	}
	return m, nil
}

var lines = [8][3]game.Coord{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Board is a 3x3 grid together with the mark to be placed next. MakeMove and
// UndoMove mutate it in place; Play returns a modified copy.
type Board struct {
	cells   [Size][Size]Mark
	current Mark
}

func NewBoard() *Board {
	return &Board{current: X}
}

// ParseBoard builds a board from 3 rows of 'X', 'O' and '.' with the given mark
// to move
func ParseBoard(rows []string, current Mark) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("board needs %d rows, got %d", Size, len(rows))
	}
	if current != X && current != O {
		return nil, fmt.Errorf("mover must be X or O, got %v", current)
	}
	b := &Board{current: current}
	for i, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("row %d needs %d cells, got %d", i, Size, len(row))
		}
		for j := 0; j < Size; j++ {
			switch row[j] {
			case 'X', 'x':
				b.cells[i][j] = X
			case 'O', 'o':
				b.cells[i][j] = O
			case '.', ' ':
			default:
				return nil, fmt.Errorf("row %d: unknown mark %q", i, row[j])
			}
		}
	}
	return b, nil
}

func (b *Board) Current() Mark {
	return b.current
}

func (b *Board) At(row, col int) Mark {
	if !(game.Coord{Row: row, Col: col}).InBounds(Size, Size) {
		panic(fmt.Sprintf("cell (%d, %d) is off the board", row, col))
	}
	return b.cells[row][col]
}

func (b *Board) IsValidMove(row, col int) bool {
	if !(game.Coord{Row: row, Col: col}).InBounds(Size, Size) {
		return false
	}
	return b.cells[row][col] == Empty
}

// MakeMove places the current mark and passes the turn. Invalid moves leave the
// board untouched and return false.
func (b *Board) MakeMove(row, col int) bool {
	if !b.IsValidMove(row, col) {
		return false
	}
	b.cells[row][col] = b.current
	b.current = b.current.Opponent()
	return true
}

// UndoMove clears a cell filled by the previous MakeMove and gives the turn back
func (b *Board) UndoMove(row, col int) {
	b.At(row, col)
	b.cells[row][col] = Empty
	b.current = b.current.Opponent()
}

// Try plays the move, runs fn on the resulting board and undoes the move on every
// exit path, panics included. Invalid moves report false without calling fn.
func (b *Board) Try(m Move, fn func(b *Board) bool) bool {
	if !b.MakeMove(m.Row, m.Col) {
		return false
	}
	defer b.UndoMove(m.Row, m.Col)
	return fn(b)
}

// EmptyCells lists the free cells in row-major order
func (b *Board) EmptyCells() []Move {
	var cells []Move
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b.cells[i][j] == Empty {
				cells = append(cells, Move{Row: i, Col: j})
			}
		}
	}
	return cells
}

func (b *Board) IsWinner(m Mark) bool {
	if m == Empty {
		return false
	}
	for _, line := range lines {
		if b.cells[line[0].Row][line[0].Col] == m &&
			b.cells[line[1].Row][line[1].Col] == m &&
			b.cells[line[2].Row][line[2].Col] == m {
			return true
		}
	}
	return false
}

// Winner returns the mark with three in a row, or Empty
func (b *Board) Winner() Mark {
	switch {
	case b.IsWinner(X):
		return X
	case b.IsWinner(O):
		return O
	}
	return Empty
}

func (b *Board) IsFull() bool {
	return len(b.EmptyCells()) == 0
}

func (b *Board) IsGameOver() bool {
	return b.Winner() != Empty || b.IsFull()
}

func (b *Board) Turn() game.Side {
	return b.current.Side()
}

// LegalMoves lists the empty cells, or nothing once the game is over
func (b *Board) LegalMoves() []game.Move {
	if b.Winner() != Empty {
		return nil
	}
	cells := b.EmptyCells()
	moves := make([]game.Move, len(cells))
	for i, c := range cells {
		moves[i] = c
	}
	return moves
}

func (b *Board) Play(move game.Move) game.State {
	m, ok := move.(Move)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	next := *b
	if !next.MakeMove(m.Row, m.Col) {
		panic(fmt.Sprintf("cell %v is not playable", m))
	}
	return &next
}

// Terminal scores a finished game for the mark to move: a win is worth
// WinScore minus the plies it took to reach, a loss the opposite, a full board 0
func (b *Board) Terminal(ply int) float64 {
	switch {
	case b.IsWinner(b.current):
		return float64(WinScore - ply)
	case b.IsWinner(b.current.Opponent()):
		return -float64(WinScore - ply)
	}
	return game.Draw
}

func (b *Board) Outcome() game.Outcome {
	switch b.Winner() {
	case X:
		return game.FirstWon
	case O:
		return game.SecondWon
	}
	if b.IsFull() {
		return game.DrawOutcome
	}
	return game.NoOutcome
}

// Evaluate scores a board from X's perspective. Searches run to the end of the
// game so this only ever sees finished boards.
func Evaluate(s game.State) float64 {
	b, ok := s.(*Board)
	if !ok {
		panic("unexpected state type")
	}
	switch b.Winner() {
	case X:
		return WinScore
	case O:
		return -WinScore
	}
	return 0
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c\n")
	for i := 0; i < Size; i++ {
		fmt.Fprintf(&sb, "%d", i+1)
		for j := 0; j < Size; j++ {
			sb.WriteByte(' ')
			if b.cells[i][j] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(b.cells[i][j].String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
