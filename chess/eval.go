package chess

import "boardgames/game"

// Material values in centipawns. The king's value is a sentinel: the searcher
// scores mate before a king could ever be captured.
var pieceValues = map[Piece]int{
	WhitePawn:   100,
	WhiteKnight: 320,
	WhiteBishop: 330,
	WhiteRook:   500,
	WhiteQueen:  900,
	WhiteKing:   20000,
}

// Score is White's material balance plus a centre bonus of 4 minus the Manhattan
// distance from the board centre for every pawn, knight and bishop
func Score(b *Board) int {
	score := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			p := b.cells[i][j]
			if p.IsEmpty() {
				continue
			}
			sign := 1
			if p.Color() == Black {
				sign = -1
			}
			score += sign * pieceValues[p.Kind()]

			switch p.Kind() {
			case WhitePawn, WhiteKnight, WhiteBishop:
				score += sign * (4 - centreDistance(i, j))
			}
		}
	}
	return score
}

// centreDistance is |3.5-row| + |3.5-col|, which is always a whole number
func centreDistance(row, col int) int {
	return (abs(2*row-(Size-1)) + abs(2*col-(Size-1))) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Evaluate scores a chess Position from White's perspective
func Evaluate(s game.State) float64 {
	p, ok := s.(Position)
	if !ok {
		panic("unexpected state type")
	}
	return float64(Score(p.Board))
}
