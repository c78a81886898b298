package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, dir, file string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, file))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows[1:]
}

func TestRunTicTacToeExperiment(t *testing.T) {
	dir, err := RunTicTacToeExperiment(Config{Games: 2, MaxTurns: 20, Seed: 5, OutDir: t.TempDir()})
	require.NoError(t, err)

	games := readRecords(t, dir, "game_records.csv")
	require.Len(t, games, 6, "Three matchups of two games")
	for _, g := range games {
		agent1, agent2, winner := g[1], g[2], g[4]
		switch {
		case agent1 == "1" && agent2 == "1":
			require.Equal(t, "draw", winner, "AI against itself")
		case agent1 == "0":
			require.NotEqual(t, "first", winner, "Random player moving first beat the AI")
		default:
			require.NotEqual(t, "second", winner, "Random player moving second beat the AI")
		}
	}

	configs := readRecords(t, dir, "agent_configs.csv")
	require.Equal(t, []string{"1", "tictactoe", "10", "false", "0"}, configs[1])
	require.NotEmpty(t, readRecords(t, dir, "move_records.csv"))
}

func TestRunDepthExperiment(t *testing.T) {
	dir, err := RunDepthExperiment(Config{Games: 1, MaxTurns: 6, Seed: 1, OutDir: t.TempDir()}, 2)
	require.NoError(t, err)

	configs := readRecords(t, dir, "agent_configs.csv")
	require.Len(t, configs, 3, "Random baseline plus depths 1 and 2")

	games := readRecords(t, dir, "game_records.csv")
	require.Len(t, games, 3, "Each depth against random, depth 2 against depth 1")

	for _, m := range readRecords(t, dir, "move_records.csv") {
		require.NotEmpty(t, m[3], "Every move should be recorded in notation")
	}
}
