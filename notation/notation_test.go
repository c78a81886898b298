package notation

import (
	"boardgames/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChessSquare(t *testing.T) {
	t.Run("decoding inverts ranks", func(t *testing.T) {
		got, err := DecodeChessSquare("e2")
		require.NoError(t, err)
		require.Equal(t, game.Coord{Row: 6, Col: 4}, got, "Rank 2 should be row 6")

		got, err = DecodeChessSquare("A8")
		require.NoError(t, err)
		require.Equal(t, game.Coord{Row: 0, Col: 0}, got, "Input should be case insensitive")
	})

	t.Run("round trip for every square", func(t *testing.T) {
		for row := 0; row < ChessSize; row++ {
			for col := 0; col < ChessSize; col++ {
				c := game.Coord{Row: row, Col: col}
				got, err := DecodeChessSquare(EncodeChessSquare(c))
				require.NoError(t, err)
				require.Equal(t, c, got)
			}
		}
	})

	t.Run("rejecting malformed squares", func(t *testing.T) {
		for _, s := range []string{"", "e", "e22", "i1", "a0", "a9", "11", "ee"} {
			_, err := DecodeChessSquare(s)
			require.ErrorIs(t, err, ErrInvalidNotation, "Square %q should be rejected", s)
		}
	})

	t.Run("panics when encoding off-board squares", func(t *testing.T) {
		require.Panics(t, func() {
			EncodeChessSquare(game.Coord{Row: 8, Col: 0})
		})
	})
}

func TestChessMove(t *testing.T) {
	t.Run("decoding a move", func(t *testing.T) {
		from, to, err := DecodeChessMove(" e2e4 ")
		require.NoError(t, err)
		require.Equal(t, game.Coord{Row: 6, Col: 4}, from)
		require.Equal(t, game.Coord{Row: 4, Col: 4}, to)
		require.Equal(t, "e2e4", EncodeChessMove(from, to))
	})

	t.Run("rejecting malformed moves", func(t *testing.T) {
		for _, s := range []string{"e2e", "e2e4q", "e2x4", "z2e4", "quit"} {
			_, _, err := DecodeChessMove(s)
			require.ErrorIs(t, err, ErrInvalidNotation, "Move %q should be rejected", s)
		}
	})
}

func TestCell(t *testing.T) {
	t.Run("decoding 1-based rows", func(t *testing.T) {
		got, err := DecodeCell("b3", 3, 3)
		require.NoError(t, err)
		require.Equal(t, game.Coord{Row: 2, Col: 1}, got)

		got, err = DecodeCell("j10", 10, 10)
		require.NoError(t, err)
		require.Equal(t, game.Coord{Row: 9, Col: 9}, got, "Sea battle rows have two digits")
	})

	t.Run("round trip on a sea battle grid", func(t *testing.T) {
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				c := game.Coord{Row: row, Col: col}
				got, err := DecodeCell(EncodeCell(c), 10, 10)
				require.NoError(t, err)
				require.Equal(t, c, got)
			}
		}
	})

	t.Run("rejecting malformed cells", func(t *testing.T) {
		for _, s := range []string{"", "a", "d1", "a4", "a0", "ax", "a+1", "a-1", "11", "A1x", "{1"} {
			_, err := DecodeCell(s, 3, 3)
			require.ErrorIs(t, err, ErrInvalidNotation, "Cell %q should be rejected", s)
		}
	})

	t.Run("rejecting leading zeros", func(t *testing.T) {
		for _, s := range []string{"a01", "a001", "j010"} {
			_, err := DecodeCell(s, 10, 10)
			require.ErrorIs(t, err, ErrInvalidNotation, "Cell %q should be rejected", s)
		}
	})
}
