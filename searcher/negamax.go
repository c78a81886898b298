package searcher

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

var ErrNegativeDepth = errors.New("negative search depth")

type Option func(n *Negamax)

// Result is a score from the perspective of the side to move at the searched node,
// with the move achieving it. Move is nil when the node was not expanded: depth 0
// or no legal moves.
type Result struct {
	Score float64
	Move  game.Move
}

// Negamax is a fixed-depth negamax search with alpha-beta pruning. Moves are tried
// in generation order and the first move reaching the best score is kept.
type Negamax struct {
	depth    int
	evaluate game.Evaluate
	pruning  bool
	metrics  metrics.Collector
}

// WithoutPruning explores every node, which yields the same results more slowly
func WithoutPruning() Option {
	return func(n *Negamax) {
		n.pruning = false
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = metrics.NewCollector()
	}
}

func NewNegamax(depth int, evaluate game.Evaluate, options ...Option) *Negamax {
	if depth < 0 {
		panic("Must specify a non-negative search depth")
	}
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	n := &Negamax{ // Default values
		depth:    depth,
		evaluate: evaluate,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *Negamax) Depth() int {
	return n.depth
}

// FindMove searches the state to the configured depth with an unbounded window.
// A nil move means the side to move has no legal moves.
func (n *Negamax) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	n.metrics.Start(n.depth)
	result, err := n.Search(state, n.depth, math.Inf(-1), math.Inf(1))
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	metric := n.metrics.Complete(result.Score)

	log.Debug().
		Int("depth", n.depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Float64("score", result.Score).
		Dur("duration", metric.Duration).
		Msgf("found move %v", result.Move)
	return result.Move, metric, nil
}

// Search returns the negamax value of the state within the (alpha, beta) window
func (n *Negamax) Search(state game.State, depth int, alpha, beta float64) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	return n.negamax(state, depth, 0, alpha, beta), nil
}

func (n *Negamax) negamax(state game.State, depth, ply int, alpha, beta float64) Result {
	n.metrics.AddNode()

	if depth == 0 {
		return Result{Score: n.evaluate(state) * state.Turn().Sign()}
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Result{Score: state.Terminal(ply)}
	}

	best := Result{Score: math.Inf(-1)}
	for _, move := range moves {
		child := n.negamax(state.Play(move), depth-1, ply+1, -beta, -alpha)
		score := -child.Score

		// Strictly greater keeps the first of equally scored moves
		if score > best.Score {
			best = Result{Score: score, Move: move}
		}

		if !n.pruning {
			continue
		}
		alpha = max(alpha, score)
		if alpha >= beta {
			n.metrics.AddCutoff()
			break
		}
	}
	return best
}
