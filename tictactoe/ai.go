package tictactoe

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// searchDepth lets the search reach the end of any game: a full board is only
// scored as terminal while depth remains
const searchDepth = Size*Size + 1

var (
	centre = Move{Row: 1, Col: 1}
	corner = Move{Row: 0, Col: 0}
)

// AI plays for whichever mark is to move. Before searching it opens in the centre
// (or a corner), takes an immediate win, and blocks the opponent's immediate win.
type AI struct {
	negamax *searcher.Negamax
}

func NewAI(options ...searcher.Option) *AI {
	return &AI{negamax: searcher.NewNegamax(searchDepth, Evaluate, options...)}
}

func (ai *AI) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	b, ok := state.(*Board)
	if !ok {
		return nil, metrics.SearchMetric{}, fmt.Errorf("unexpected state type %T", state)
	}
	if b.IsGameOver() {
		return nil, metrics.SearchMetric{}, nil
	}

	if len(b.EmptyCells()) == Size*Size {
		if b.IsValidMove(centre.Row, centre.Col) {
			return centre, metrics.SearchMetric{}, nil
		}
		return corner, metrics.SearchMetric{}, nil
	}

	if m, ok := b.FindWinningMove(b.current); ok {
		log.Debug().Msgf("%v wins at %v", b.current, m)
		return m, metrics.SearchMetric{}, nil
	}
	if m, ok := b.FindWinningMove(b.current.Opponent()); ok {
		log.Debug().Msgf("%v blocks at %v", b.current, m)
		return m, metrics.SearchMetric{}, nil
	}

	return ai.negamax.FindMove(b.clone())
}

// FindWinningMove returns the first empty cell that completes a line for mark
func (b *Board) FindWinningMove(mark Mark) (Move, bool) {
	mover := b.current
	b.current = mark
	defer func() { b.current = mover }()

	for _, m := range b.EmptyCells() {
		wins := b.Try(m, func(next *Board) bool {
			return next.IsWinner(mark)
		})
		if wins {
			return m, true
		}
	}
	return Move{}, false
}

func (b *Board) clone() *Board {
	c := *b
	return &c
}
