package engine

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/notation"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrQuit is returned when the player types "quit"
var ErrQuit = errors.New("player quit")

// ReadMove turns a line typed by a player into a move that is legal in state
type ReadMove func(state game.State, input string) (game.Move, error)

// HumanAgent asks a person for moves. Malformed and illegal moves are reported
// and asked for again.
type HumanAgent struct {
	scanner  *bufio.Scanner
	out      io.Writer
	read     ReadMove
	describe func(game.State) string
}

// NewHumanAgent reads moves from in and prompts on out. describe renders the
// state before each prompt; nil prints the state as is.
func NewHumanAgent(in io.Reader, out io.Writer, read ReadMove, describe func(game.State) string) *HumanAgent {
	if read == nil {
		panic("Must specify how to read moves")
	}
	if describe == nil {
		describe = func(s game.State) string { return fmt.Sprint(s) }
	}
	return &HumanAgent{
		scanner:  bufio.NewScanner(in),
		out:      out,
		read:     read,
		describe: describe,
	}
}

func (h *HumanAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	fmt.Fprint(h.out, h.describe(state))
	for {
		fmt.Fprint(h.out, "your move (or quit): ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return nil, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return nil, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", io.ErrUnexpectedEOF)
		}

		input := strings.TrimSpace(h.scanner.Text())
		if strings.EqualFold(input, "quit") {
			return nil, metrics.SearchMetric{}, ErrQuit
		}

		move, err := h.read(state, input)
		if errors.Is(err, notation.ErrInvalidNotation) || errors.Is(err, game.ErrIllegalMove) {
			log.Debug().Err(err).Msgf("rejected input %q", input)
			fmt.Fprintf(h.out, "%v, try again\n", err)
			continue
		}
		if err != nil {
			return nil, metrics.SearchMetric{}, err
		}
		return move, metrics.SearchMetric{}, nil
	}
}
