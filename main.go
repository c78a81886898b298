package main

import (
	"boardgames/chess"
	"boardgames/engine"
	"boardgames/experiments"
	"boardgames/game"
	"boardgames/meta"
	"boardgames/searcher"
	"boardgames/tictactoe"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "analyse", "One of: analyse, play, depth, tictactoe")
	gameName := flag.String("game", experiments.Chess, "Game to play against the AI: chess or tictactoe")
	second := flag.Bool("second", false, "Let the AI move first")
	fen := flag.String("fen", "", "Chess position to analyse in FEN (default: starting position)")
	depth := flag.Int("depth", meta.DEPTH, "Search depth in plies (maximum depth for the depth experiment)")
	games := flag.Int("games", meta.GAMES, "Games per experiment matchup")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Turn cap per game")
	seed := flag.Uint64("seed", meta.SEED, "Seed for random baseline agents")
	out := flag.String("out", meta.OUT_DIR, "Directory for experiment records")
	verbose := flag.Bool("verbose", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := experiments.Config{Games: *games, MaxTurns: *maxTurns, Seed: *seed, OutDir: *out}

	var err error
	switch *mode {
	case "analyse":
		err = analyse(*fen, *depth)
	case "play":
		if !*verbose {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
		err = play(*gameName, *depth, *maxTurns, *second)
	case "depth":
		_, err = experiments.RunDepthExperiment(cfg, *depth)
	case "tictactoe":
		_, err = experiments.RunTicTacToeExperiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func analyse(fen string, depth int) error {
	pos := chess.NewPosition()
	if fen != "" {
		var err error
		pos, err = chess.FromFEN(fen)
		if err != nil {
			return err
		}
	}
	if depth < 0 {
		return fmt.Errorf("%w: %d", searcher.ErrNegativeDepth, depth)
	}

	fmt.Print(pos.Draw())
	if outcome := pos.Outcome(); outcome != game.NoOutcome {
		fmt.Printf("game over: %s\n", outcome)
		return nil
	}

	n := searcher.NewNegamax(depth, chess.Evaluate, searcher.WithMetrics())
	move, metric, err := n.FindMove(pos)
	if err != nil {
		return err
	}
	fmt.Printf("best move: %v\nscore: %g\nnodes: %d, cutoffs: %d, time: %v\n",
		move, metric.Score, metric.Nodes, metric.Cutoffs, metric.Duration)
	return nil
}

// play pits a person on the console against the AI
func play(name string, depth, maxTurns int, second bool) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", searcher.ErrNegativeDepth, depth)
	}

	var state game.State
	var ai engine.Agent
	var human *engine.HumanAgent
	describe := func(s game.State) string { return fmt.Sprint(s) }
	switch name {
	case experiments.Chess:
		state = chess.NewPosition()
		ai = searcher.NewNegamax(depth, chess.Evaluate)
		describe = chess.Describe
		human = engine.NewHumanAgent(os.Stdin, os.Stdout, chess.ReadMove, describe)
	case experiments.TicTacToe:
		state = tictactoe.NewBoard()
		ai = tictactoe.NewAI()
		human = engine.NewHumanAgent(os.Stdin, os.Stdout, tictactoe.ReadMove, nil)
	default:
		return fmt.Errorf("unknown game %q", name)
	}

	agents := []engine.Agent{human, ai}
	if second {
		agents[0], agents[1] = ai, human
	}
	e := engine.LocalEngine(state, agents)
	e.MaxTurns = maxTurns

	outcome, _, moves, err := e.Run()
	if errors.Is(err, engine.ErrQuit) {
		fmt.Println("bye")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Print(describe(e.State))
	you := game.FirstWon
	if second {
		you = game.SecondWon
	}
	switch outcome {
	case game.DrawOutcome:
		fmt.Printf("draw after %d moves\n", len(moves))
	case you:
		fmt.Printf("you win after %d moves\n", len(moves))
	default:
		fmt.Printf("the AI wins after %d moves\n", len(moves))
	}
	return nil
}
