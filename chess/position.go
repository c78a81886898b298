package chess

import (
	"boardgames/game"
	"fmt"
	"strings"
)

var ErrIllegalMove = game.ErrIllegalMove

// Position pairs a board with the side to move. Positions are immutable: Play and
// Apply return successors built on board copies.
type Position struct {
	Board *Board
	Mover game.Side
}

func NewPosition() Position {
	return Position{Board: NewBoard(), Mover: White}
}

func (p Position) Turn() game.Side {
	return p.Mover
}

func (p Position) LegalMoves() []game.Move {
	legal := p.Board.LegalMoves(p.Mover)
	moves := make([]game.Move, len(legal))
	for i, m := range legal {
		moves[i] = m
	}
	return moves
}

func (p Position) Play(move game.Move) game.State {
	m, ok := move.(Move)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	return Position{Board: p.Board.Apply(m), Mover: p.Mover.Opponent()}
}

// Apply validates the move for the side to move before playing it
func (p Position) Apply(m Move) (Position, error) {
	if !p.Board.IsValidMove(m, p.Mover) {
		return p, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	return Position{Board: p.Board.Apply(m), Mover: p.Mover.Opponent()}, nil
}

// Terminal is a loss when the mover is mated and a draw on stalemate
func (p Position) Terminal(ply int) float64 {
	if p.Board.IsInCheck(p.Mover) {
		return game.Loss
	}
	return game.Draw
}

func (p Position) Outcome() game.Outcome {
	if len(p.Board.LegalMoves(p.Mover)) > 0 {
		return game.NoOutcome
	}
	if !p.Board.IsInCheck(p.Mover) {
		return game.DrawOutcome
	}
	if p.Mover == White {
		return game.SecondWon
	}
	return game.FirstWon
}

// Status names the mover's predicament: "checkmate", "stalemate", "check" or ""
func (p Position) Status() string {
	switch {
	case p.Board.IsCheckmate(p.Mover):
		return "checkmate"
	case p.Board.IsStalemate(p.Mover):
		return "stalemate"
	case p.Board.IsInCheck(p.Mover):
		return "check"
	default:
		return ""
	}
}

// ReadMove parses a move typed by a player and checks that it is legal for the
// side to move
func ReadMove(state game.State, input string) (game.Move, error) {
	p, ok := state.(Position)
	if !ok {
		return nil, fmt.Errorf("unexpected state type %T", state)
	}
	m, err := ParseMove(input)
	if err != nil {
		return nil, err
	}
	if _, err := p.Apply(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Describe draws the position for a player, announcing check and the end of
// the game
func Describe(state game.State) string {
	p := state.(Position)
	var sb strings.Builder
	sb.WriteString(p.Draw())
	side := "white"
	if p.Mover == Black {
		side = "black"
	}
	if status := p.Status(); status != "" {
		fmt.Fprintf(&sb, "%s: %s\n", side, status)
	}
	return sb.String()
}

func (p Position) String() string {
	side := "white"
	if p.Mover == Black {
		side = "black"
	}
	return fmt.Sprintf("%s%s to move\n", p.Board, side)
}
