package chess

import (
	"boardgames/game"
	"fmt"

	notnil "github.com/notnil/chess"
)

var toNotnil = map[Piece]notnil.Piece{
	WhitePawn:   notnil.WhitePawn,
	WhiteKnight: notnil.WhiteKnight,
	WhiteBishop: notnil.WhiteBishop,
	WhiteRook:   notnil.WhiteRook,
	WhiteQueen:  notnil.WhiteQueen,
	WhiteKing:   notnil.WhiteKing,
	BlackPawn:   notnil.BlackPawn,
	BlackKnight: notnil.BlackKnight,
	BlackBishop: notnil.BlackBishop,
	BlackRook:   notnil.BlackRook,
	BlackQueen:  notnil.BlackQueen,
	BlackKing:   notnil.BlackKing,
}

var fromNotnil = func() map[notnil.Piece]Piece {
	m := make(map[notnil.Piece]Piece, len(toNotnil))
	for ours, theirs := range toNotnil {
		m[theirs] = ours
	}
	return m
}()

// FromFEN reads the piece placement and side to move of a FEN record. Castling and
// en passant fields are accepted but ignored since those rules are not played.
func FromFEN(fen string) (Position, error) {
	option, err := notnil.FEN(fen)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse FEN: %w", err)
	}
	pos := notnil.NewGame(option).Position()

	b := &Board{}
	for sq, piece := range pos.Board().SquareMap() {
		p, ok := fromNotnil[piece]
		if !ok {
			continue
		}
		b.Set(coordOf(sq), p)
	}

	mover := White
	if pos.Turn() == notnil.Black {
		mover = Black
	}
	return Position{Board: b, Mover: mover}, nil
}

// FEN renders the position as a FEN record without castling rights or en passant
// target
func (p Position) FEN() string {
	squares := make(map[notnil.Square]notnil.Piece)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			c := game.Coord{Row: i, Col: j}
			if piece := p.Board.At(c); !piece.IsEmpty() {
				squares[squareOf(c)] = toNotnil[piece]
			}
		}
	}
	turn := "w"
	if p.Mover == Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", notnil.NewBoard(squares).String(), turn)
}

// Draw renders the board with unicode pieces
func (p Position) Draw() string {
	pos, err := notnil.FEN(p.FEN())
	if err != nil {
		panic(fmt.Sprintf("position renders an unreadable FEN: %v", err))
	}
	return notnil.NewGame(pos).Position().Board().Draw()
}

func squareOf(c game.Coord) notnil.Square {
	return notnil.Square((Size-1-c.Row)*Size + c.Col)
}

func coordOf(sq notnil.Square) game.Coord {
	return game.Coord{Row: Size - 1 - int(sq.Rank()), Col: int(sq.File())}
}
