package engine

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	State    game.State
	Agents   []Agent // indexed by game.Side
	MaxTurns int
}

func LocalEngine(state game.State, agents []Agent) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Local{
		State:    state,
		Agents:   agents,
		MaxTurns: MaxTurns,
	}
}

// Run executes the entire game loop. A game still undecided after MaxTurns moves
// counts as a draw.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: playerID(e.State.Turn()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", gameMetric.StartingPlayer)

	outcome := e.State.Outcome()
	turn := 1
	for outcome == game.NoOutcome && turn <= e.MaxTurns {
		side := e.State.Turn()
		move, searchMetric, err := e.Agents[side].FindMove(e.State)
		if err != nil {
			return outcome, gameMetric, moveMetrics, fmt.Errorf("player %d failed to move on turn %d: %w", playerID(side), turn, err)
		}
		if move == nil {
			return outcome, gameMetric, moveMetrics, fmt.Errorf("player %d found no move on turn %d of an undecided game", playerID(side), turn)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       playerID(side),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: player %d plays %v", turn, playerID(side), move)

		e.State = e.State.Play(move)
		outcome = e.State.Outcome()
		turn++
	}

	if outcome == game.NoOutcome {
		log.Info().Msgf("stopped after %d turns without a winner", e.MaxTurns)
		outcome = game.DrawOutcome
	}

	gameMetric.Winner = outcome.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, outcome)

	return outcome, gameMetric, moveMetrics, nil
}

func playerID(side game.Side) int {
	return int(side) + 1
}
