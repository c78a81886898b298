package engine

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
)

// MaxTurns caps games whose rules have no draw by repetition
const MaxTurns = 300

type Engine interface {
	// Run plays a game till it is decided or MaxTurns moves have been made
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Agent chooses moves for whichever side is to move
type Agent interface {
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}
