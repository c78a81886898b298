package searcher

import (
	"boardgames/game"
	"strconv"

	"golang.org/x/exp/rand"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return strconv.Itoa(m.id)
}

// mockState is a hand-built game tree. Leaves carry absolute values for the
// evaluation function, nodes without children score terminal.
type mockState struct {
	turn     game.Side
	value    float64
	terminal float64
	children []mockState
}

func (m mockState) Turn() game.Side {
	return m.turn
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = mockMove{id: i}
	}
	return moves
}

func (m mockState) Play(move game.Move) game.State {
	child := m.children[move.(mockMove).id]
	child.turn = m.turn.Opponent()
	return child
}

func (m mockState) Terminal(ply int) float64 {
	return m.terminal
}

func (m mockState) Outcome() game.Outcome {
	return game.NoOutcome
}

func evaluateMock(s game.State) float64 {
	return s.(mockState).value
}

func leaf(value float64) mockState {
	return mockState{value: value}
}

func node(children ...mockState) mockState {
	return mockState{children: children}
}

// randomTree builds a tree of the given height with small integer leaf values so
// that equal scores are common
func randomTree(r *rand.Rand, height int) mockState {
	if height == 0 || r.Intn(8) == 0 {
		return mockState{value: float64(r.Intn(7) - 3), terminal: float64(r.Intn(3) - 1)}
	}
	children := make([]mockState, 1+r.Intn(4))
	for i := range children {
		children[i] = randomTree(r, height-1)
	}
	return mockState{value: float64(r.Intn(7) - 3), children: children}
}
