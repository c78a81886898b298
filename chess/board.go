package chess

import (
	"boardgames/game"
	"boardgames/notation"
	"fmt"
	"strings"
)

const Size = notation.ChessSize

// Move relocates the piece on From to To. Whatever stood on To is captured.
type Move struct {
	From game.Coord
	To   game.Coord
}

func (m Move) String() string {
	return notation.EncodeChessMove(m.From, m.To)
}

// ParseMove decodes a move such as "e2e4". It says nothing about legality.
func ParseMove(s string) (Move, error) {
	from, to, err := notation.DecodeChessMove(s)
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

var startingRows = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

var (
	rookDirections   = []game.Coord{{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0}}
	bishopDirections = []game.Coord{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	knightOffsets    = []game.Coord{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
	kingOffsets = []game.Coord{
		{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0},
		{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1},
	}
)

// Board is an 8x8 grid, row 0 being rank 8. The side to move is not part of the
// board; see Position.
//
// Promotion, castling and en passant are not implemented: a pawn reaching the last
// rank stays a pawn.
type Board struct {
	cells [Size][Size]Piece
}

// NewBoard returns the standard starting layout
func NewBoard() *Board {
	b, err := ParseBoard(startingRows)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseBoard builds a board from 8 rows of piece letters, rank 8 first, '.' for
// empty squares
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("board needs %d rows, got %d", Size, len(rows))
	}
	b := &Board{}
	for i, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("row %d needs %d squares, got %d", i, Size, len(row))
		}
		for j := 0; j < Size; j++ {
			p := Piece(row[j])
			if row[j] == '.' {
				p = Empty
			}
			if !p.Valid() {
				return nil, fmt.Errorf("row %d: unknown piece %q", i, row[j])
			}
			b.cells[i][j] = p
		}
	}
	return b, nil
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// At returns the piece on c. Off-board coordinates are a programming error.
func (b *Board) At(c game.Coord) Piece {
	if !c.InBounds(Size, Size) {
		panic(fmt.Sprintf("square %+v is off the board", c))
	}
	return b.cells[c.Row][c.Col]
}

func (b *Board) Set(c game.Coord, p Piece) {
	if !c.InBounds(Size, Size) {
		panic(fmt.Sprintf("square %+v is off the board", c))
	}
	b.cells[c.Row][c.Col] = p
}

// MakeMove moves a piece in place without any validation
func (b *Board) MakeMove(m Move) {
	b.Set(m.To, b.At(m.From))
	b.Set(m.From, Empty)
}

// Apply returns a copy of the board with the move made
func (b *Board) Apply(m Move) *Board {
	next := b.Copy()
	next.MakeMove(m)
	return next
}

// PieceMoves lists the destinations the piece on from can reach by its movement
// rules alone, ignoring whether its own king is left in check
func (b *Board) PieceMoves(from game.Coord) []game.Coord {
	piece := b.At(from)
	switch piece.Kind() {
	case WhitePawn:
		return b.pawnMoves(from)
	case WhiteRook:
		return b.slidingMoves(from, rookDirections)
	case WhiteKnight:
		return b.steppingMoves(from, knightOffsets)
	case WhiteBishop:
		return b.slidingMoves(from, bishopDirections)
	case WhiteQueen:
		return append(b.slidingMoves(from, rookDirections), b.slidingMoves(from, bishopDirections)...)
	case WhiteKing:
		return b.steppingMoves(from, kingOffsets)
	}
	return nil
}

func (b *Board) pawnMoves(from game.Coord) []game.Coord {
	color := b.At(from).Color()
	direction, startRow := -1, Size-2
	if color == Black {
		direction, startRow = 1, 1
	}

	var moves []game.Coord
	one := game.Coord{Row: from.Row + direction, Col: from.Col}
	if one.InBounds(Size, Size) && b.At(one).IsEmpty() {
		moves = append(moves, one)
		two := game.Coord{Row: from.Row + 2*direction, Col: from.Col}
		if from.Row == startRow && b.At(two).IsEmpty() {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		target := game.Coord{Row: from.Row + direction, Col: from.Col + dc}
		if target.InBounds(Size, Size) && b.At(target).Is(color.Opponent()) {
			moves = append(moves, target)
		}
	}
	return moves
}

func (b *Board) slidingMoves(from game.Coord, directions []game.Coord) []game.Coord {
	color := b.At(from).Color()
	var moves []game.Coord
	for _, d := range directions {
		for i := 1; i < Size; i++ {
			target := game.Coord{Row: from.Row + i*d.Row, Col: from.Col + i*d.Col}
			if !target.InBounds(Size, Size) {
				break
			}
			occupant := b.At(target)
			if occupant.IsEmpty() {
				moves = append(moves, target)
				continue
			}
			if occupant.Is(color.Opponent()) {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

func (b *Board) steppingMoves(from game.Coord, offsets []game.Coord) []game.Coord {
	color := b.At(from).Color()
	var moves []game.Coord
	for _, o := range offsets {
		target := game.Coord{Row: from.Row + o.Row, Col: from.Col + o.Col}
		if target.InBounds(Size, Size) && !b.At(target).Is(color) {
			moves = append(moves, target)
		}
	}
	return moves
}

// PseudoLegalMoves lists every move of the color's pieces, row-major by origin
// square and then in rule order
func (b *Board) PseudoLegalMoves(color game.Side) []Move {
	var moves []Move
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			from := game.Coord{Row: i, Col: j}
			if !b.cells[i][j].Is(color) {
				continue
			}
			for _, to := range b.PieceMoves(from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// LegalMoves filters out the pseudo-legal moves that leave the color's own king in
// check
func (b *Board) LegalMoves(color game.Side) []Move {
	pseudo := b.PseudoLegalMoves(color)
	moves := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if b.IsMoveLegal(m, color) {
			moves = append(moves, m)
		}
	}
	return moves
}

// IsMoveLegal reports whether the move keeps the color's king out of check. The
// move itself is assumed to be pseudo-legal.
func (b *Board) IsMoveLegal(m Move, color game.Side) bool {
	return !b.Apply(m).IsInCheck(color)
}

// IsValidMove checks everything: bounds, ownership, movement rules and king safety
func (b *Board) IsValidMove(m Move, color game.Side) bool {
	if !m.From.InBounds(Size, Size) || !m.To.InBounds(Size, Size) {
		return false
	}
	if !b.At(m.From).Is(color) {
		return false
	}
	for _, to := range b.PieceMoves(m.From) {
		if to == m.To {
			return b.IsMoveLegal(m, color)
		}
	}
	return false
}

// KingSquare locates the color's king, scanning row-major
func (b *Board) KingSquare(color game.Side) (game.Coord, bool) {
	king := kingOf(color)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b.cells[i][j] == king {
				return game.Coord{Row: i, Col: j}, true
			}
		}
	}
	return game.Coord{}, false
}

// IsInCheck reports whether any opposing piece attacks the color's king. A board
// without that king is never in check.
func (b *Board) IsInCheck(color game.Side) bool {
	king, ok := b.KingSquare(color)
	if !ok {
		return false
	}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if !b.cells[i][j].Is(color.Opponent()) {
				continue
			}
			for _, to := range b.PieceMoves(game.Coord{Row: i, Col: j}) {
				if to == king {
					return true
				}
			}
		}
	}
	return false
}

func (b *Board) IsCheckmate(color game.Side) bool {
	return b.IsInCheck(color) && len(b.LegalMoves(color)) == 0
}

func (b *Board) IsStalemate(color game.Side) bool {
	return !b.IsInCheck(color) && len(b.LegalMoves(color)) == 0
}

// Mirror flips the board vertically and swaps piece colors
func (b *Board) Mirror() *Board {
	m := &Board{}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			p := b.cells[i][j]
			switch {
			case p.IsEmpty():
			case p.Color() == White:
				p = p - 'A' + 'a'
			default:
				p = p.Kind()
			}
			m.cells[Size-1-i][j] = p
		}
	}
	return m
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for i := 0; i < Size; i++ {
		fmt.Fprintf(&sb, "%d ", Size-i)
		for j := 0; j < Size; j++ {
			sb.WriteString(b.cells[i][j].String())
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", Size-i)
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
