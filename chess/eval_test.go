package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("starting position is balanced", func(t *testing.T) {
		require.Equal(t, 0, Score(NewBoard()))
	})

	t.Run("material and centre bonus of a missing knight", func(t *testing.T) {
		rows := append([]string{}, startingRows...)
		rows[0] = "r.bqkbnr"
		b := mustParse(t, rows...)

		// The b8 knight is 6 steps from the centre: -320 material and a -2 bonus
		require.Equal(t, 318, Score(b))
	})

	t.Run("centre squares earn the largest bonus", func(t *testing.T) {
		centre := mustParse(t,
			"....k...",
			"........",
			"........",
			"...N....",
			"........",
			"........",
			"........",
			"....K...",
		)
		corner := mustParse(t,
			"N...k...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"....K...",
		)
		require.Equal(t, 320+3, Score(centre))
		require.Equal(t, 320-3, Score(corner))
	})

	t.Run("rooks, queens and kings earn no positional bonus", func(t *testing.T) {
		b := mustParse(t,
			"Q...k...",
			"........",
			"........",
			"...R....",
			"........",
			"........",
			"........",
			"....K...",
		)
		require.Equal(t, 900+500, Score(b))
	})

	t.Run("mirroring colors negates the score", func(t *testing.T) {
		boards := []*Board{
			NewBoard(),
			matedBoard(t),
			mustParse(t,
				"r...k..r",
				"ppp..ppp",
				"..n.bn..",
				"...pp...",
				".b.PP...",
				"..N.BN..",
				"PPP..PPP",
				"R...KB.R",
			),
			mustParse(t,
				"....k...",
				".p......",
				"........",
				"..B.....",
				"......n.",
				"........",
				"...Q....",
				"....K...",
			),
		}
		for _, b := range boards {
			require.Equal(t, Score(b), -Score(b.Mirror()))
		}
	})
}

func TestEvaluate(t *testing.T) {
	rows := append([]string{}, startingRows...)
	rows[0] = "r.bqkbnr"
	b := mustParse(t, rows...)

	require.Equal(t, 318.0, Evaluate(Position{Board: b, Mover: White}))
	require.Equal(t, 318.0, Evaluate(Position{Board: b, Mover: Black}), "Evaluation ignores the side to move")
	require.Panics(t, func() {
		Evaluate(nil)
	})
}
