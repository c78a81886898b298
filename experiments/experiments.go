package experiments

import (
	"boardgames/chess"
	"boardgames/engine"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/searcher"
	"boardgames/tictactoe"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	Chess     = "chess"
	TicTacToe = "tictactoe"
)

// Config controls the size of an experiment and where its records go
type Config struct {
	Games    int // Per match up
	MaxTurns int
	Seed     uint64
	OutDir   string
}

// RunDepthExperiment pairs chess searchers of increasing depth against a random
// baseline and against the depth-1 searcher
func RunDepthExperiment(cfg Config, maxDepth int) (string, error) {
	random := metrics.AgentConfig{ID: 0, Game: Chess, Random: true, Seed: cfg.Seed}
	configs := []metrics.AgentConfig{random}
	for d := 1; d <= maxDepth; d++ {
		configs = append(configs, metrics.AgentConfig{ID: d, Game: Chess, Depth: d})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{config, random})
		if config.Depth > 1 {
			// Searcher plays second against the weakest searcher
			matchUps = append(matchUps, []metrics.AgentConfig{configs[1], config})
		}
	}

	return runExperiment("depth", cfg, configs, matchUps)
}

// RunTicTacToeExperiment plays the AI against itself and against a random player.
// The AI should never lose.
func RunTicTacToeExperiment(cfg Config) (string, error) {
	ai := metrics.AgentConfig{ID: 1, Game: TicTacToe, Depth: tictactoe.Size*tictactoe.Size + 1}
	random := metrics.AgentConfig{ID: 0, Game: TicTacToe, Random: true, Seed: cfg.Seed}
	configs := []metrics.AgentConfig{random, ai}
	matchUps := [][]metrics.AgentConfig{
		{ai, ai},
		{random, ai},
		{ai, random},
	}

	return runExperiment("tictactoe", cfg, configs, matchUps)
}

func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			count++
			outcome, gameMetric, moveMetrics, err := runGame(config1, config2, cfg.MaxTurns, uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game between two agents. Random agents are reseeded per
// game so that repeated games differ.
func runGame(config1, config2 metrics.AgentConfig, maxTurns int, gameID uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []engine.Agent{
		createAgent(config1, gameID),
		createAgent(config2, gameID),
	}
	e := engine.LocalEngine(initialState(config1.Game), agents)
	if maxTurns > 0 {
		e.MaxTurns = maxTurns
	}
	return e.Run()
}

func initialState(name string) game.State {
	switch name {
	case Chess:
		return chess.NewPosition()
	case TicTacToe:
		return tictactoe.NewBoard()
	default:
		panic(fmt.Sprintf("unknown game %q", name))
	}
}

func createAgent(config metrics.AgentConfig, gameID uint64) engine.Agent {
	if config.Random {
		return engine.NewRandomAgent(config.Seed + gameID)
	}
	switch config.Game {
	case Chess:
		return searcher.NewNegamax(config.Depth, chess.Evaluate, searcher.WithMetrics())
	case TicTacToe:
		return tictactoe.NewAI(searcher.WithMetrics())
	default:
		panic(fmt.Sprintf("unknown game %q", config.Game))
	}
}
