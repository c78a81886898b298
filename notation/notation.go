// Package notation translates between human-readable board coordinates and
// zero-based grid coordinates.
//
// Chess squares are a file letter and a rank digit ("e2"), rank 8 being grid row 0.
// Cells of the other grids (tic-tac-toe, sea battle) are a column letter and a
// 1-based row number ("b3", "j10"), row 1 being grid row 0.
package notation

import (
	"boardgames/game"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const ChessSize = 8

var ErrInvalidNotation = errors.New("invalid notation")

// column maps a lower-case letter to a zero-based column, or -1 when it is not
// one of the first cols letters
func column(b byte, cols int) int {
	if b < 'a' || int(b-'a') >= cols {
		return -1
	}
	return int(b - 'a')
}

func DecodeChessSquare(s string) (game.Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return game.Coord{}, fmt.Errorf("%w: square %q must be a file and a rank", ErrInvalidNotation, s)
	}
	col := column(s[0], ChessSize)
	if col < 0 {
		return game.Coord{}, fmt.Errorf("%w: file %q out of range a-h", ErrInvalidNotation, s[0])
	}
	if s[1] < '1' || s[1] > '8' {
		return game.Coord{}, fmt.Errorf("%w: rank %q out of range 1-8", ErrInvalidNotation, s[1])
	}
	return game.Coord{Row: ChessSize - int(s[1]-'0'), Col: col}, nil
}

func EncodeChessSquare(c game.Coord) string {
	if !c.InBounds(ChessSize, ChessSize) {
		panic(fmt.Sprintf("square %+v is off the board", c))
	}
	return string([]byte{byte('a' + c.Col), byte('0' + ChessSize - c.Row)})
}

// DecodeChessMove parses a from-to move such as "e2e4"
func DecodeChessMove(s string) (from, to game.Coord, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 {
		return from, to, fmt.Errorf("%w: move %q must have 4 characters", ErrInvalidNotation, s)
	}
	if from, err = DecodeChessSquare(s[:2]); err != nil {
		return from, to, err
	}
	if to, err = DecodeChessSquare(s[2:]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

func EncodeChessMove(from, to game.Coord) string {
	return EncodeChessSquare(from) + EncodeChessSquare(to)
}

// DecodeCell parses a column letter followed by a 1-based row number on a grid of
// the given dimensions
func DecodeCell(s string, rows, cols int) (game.Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return game.Coord{}, fmt.Errorf("%w: cell %q must be a column and a row", ErrInvalidNotation, s)
	}
	col := column(s[0], cols)
	if col < 0 {
		return game.Coord{}, fmt.Errorf("%w: column %q out of range", ErrInvalidNotation, s[0])
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || s[1] == '+' || s[1] == '-' || s[1] == '0' {
		return game.Coord{}, fmt.Errorf("%w: row %q is not a number", ErrInvalidNotation, s[1:])
	}
	if row < 1 || row > rows {
		return game.Coord{}, fmt.Errorf("%w: row %d out of range 1-%d", ErrInvalidNotation, row, rows)
	}
	return game.Coord{Row: row - 1, Col: col}, nil
}

func EncodeCell(c game.Coord) string {
	if c.Row < 0 || c.Col < 0 || c.Col >= 26 {
		panic(fmt.Sprintf("cell %+v cannot be encoded", c))
	}
	return string(rune('a'+c.Col)) + strconv.Itoa(c.Row+1)
}
