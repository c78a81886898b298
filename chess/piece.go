package chess

import "boardgames/game"

// Piece is a FEN-style piece letter: upper case for White, lower case for Black.
// The zero value is an empty square.
type Piece byte

const (
	Empty Piece = 0

	WhitePawn   Piece = 'P'
	WhiteKnight Piece = 'N'
	WhiteBishop Piece = 'B'
	WhiteRook   Piece = 'R'
	WhiteQueen  Piece = 'Q'
	WhiteKing   Piece = 'K'

	BlackPawn   Piece = 'p'
	BlackKnight Piece = 'n'
	BlackBishop Piece = 'b'
	BlackRook   Piece = 'r'
	BlackQueen  Piece = 'q'
	BlackKing   Piece = 'k'
)

const (
	White = game.First
	Black = game.Second
)

func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Kind returns the white form of the piece, e.g. 'N' for both knights
func (p Piece) Kind() Piece {
	if p >= 'a' && p <= 'z' {
		return p - 'a' + 'A'
	}
	return p
}

func (p Piece) Color() game.Side {
	if p >= 'a' && p <= 'z' {
		return Black
	}
	return White
}

// Is reports whether p is a piece of the given color
func (p Piece) Is(color game.Side) bool {
	return p != Empty && p.Color() == color
}

func (p Piece) Valid() bool {
	switch p.Kind() {
	case WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing, Empty:
		return true
	}
	return false
}

func (p Piece) String() string {
	if p == Empty {
		return "."
	}
	return string(rune(p))
}

func kingOf(color game.Side) Piece {
	if color == White {
		return WhiteKing
	}
	return BlackKing
}
