package tictactoe

import (
	"boardgames/game"
	"boardgames/searcher"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func bestMove(t *testing.T, ai *AI, b *Board) (Move, bool) {
	t.Helper()
	move, _, err := ai.FindMove(b)
	require.NoError(t, err)
	if move == nil {
		return Move{}, false
	}
	return move.(Move), true
}

func TestAIShortCircuits(t *testing.T) {
	ai := NewAI()

	t.Run("opens in the centre", func(t *testing.T) {
		m, ok := bestMove(t, ai, NewBoard())
		require.True(t, ok)
		require.Equal(t, Move{Row: 1, Col: 1}, m)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		b := mustParse(t, X, "XX.", "OO.", "...")
		m, ok := bestMove(t, ai, b)
		require.True(t, ok)
		require.Equal(t, Move{Row: 0, Col: 2}, m, "Completing the top row wins")
		require.Equal(t, mustParse(t, X, "XX.", "OO.", "..."), b, "Board should be left untouched")
	})

	t.Run("prefers winning over blocking", func(t *testing.T) {
		b := mustParse(t, O, "XX.", "OO.", "X..")
		m, ok := bestMove(t, ai, b)
		require.True(t, ok)
		require.Equal(t, Move{Row: 1, Col: 2}, m)
	})

	t.Run("blocks the opponent's immediate win", func(t *testing.T) {
		b := mustParse(t, O, "XX.", ".O.", "...")
		m, ok := bestMove(t, ai, b)
		require.True(t, ok)
		require.Equal(t, Move{Row: 0, Col: 2}, m)
	})

	t.Run("no move on a finished board", func(t *testing.T) {
		_, ok := bestMove(t, ai, mustParse(t, O, "XXX", "OO.", "..."))
		require.False(t, ok)
	})
}

func TestAISearch(t *testing.T) {
	t.Run("answers a corner opening in the centre", func(t *testing.T) {
		ai := NewAI()
		b := mustParse(t, O, "X..", "...", "...")

		m, ok := bestMove(t, ai, b)
		require.True(t, ok)
		require.Equal(t, Move{Row: 1, Col: 1}, m, "Every other reply loses")
	})

	t.Run("converts a forced win", func(t *testing.T) {
		ai := NewAI()
		n := searcher.NewNegamax(searchDepth, Evaluate)
		// O answered the corner opening with the opposite corner
		b := mustParse(t, X, "X..", "...", "..O")

		before, err := n.Search(b, searchDepth, math.Inf(-1), math.Inf(1))
		require.NoError(t, err)
		require.Equal(t, 95.0, before.Score, "X wins on its third move at ply 5")

		m, ok := bestMove(t, ai, b)
		require.True(t, ok)
		after, err := n.Search(b.Play(m), searchDepth, math.Inf(-1), math.Inf(1))
		require.NoError(t, err)
		require.Equal(t, -96.0, after.Score, "O should still be lost after the chosen move")
	})

	t.Run("perfect play from the empty board is a draw", func(t *testing.T) {
		n := searcher.NewNegamax(searchDepth, Evaluate)
		result, err := n.Search(NewBoard(), searchDepth, math.Inf(-1), math.Inf(1))
		require.NoError(t, err)
		require.Equal(t, 0.0, result.Score)
		require.Equal(t, Move{Row: 0, Col: 0}, result.Move, "First of the equally drawn moves")
	})

	t.Run("AI against itself always draws", func(t *testing.T) {
		ai := NewAI()
		b := NewBoard()
		for !b.IsGameOver() {
			m, ok := bestMove(t, ai, b)
			require.True(t, ok)
			require.True(t, b.MakeMove(m.Row, m.Col))
		}
		require.Equal(t, game.DrawOutcome, b.Outcome())
	})
}
