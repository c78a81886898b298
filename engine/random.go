package engine

import (
	"boardgames/experiments/metrics"
	"boardgames/game"

	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal move. It is the baseline opponent in
// experiments.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, nil
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
