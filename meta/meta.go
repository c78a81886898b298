// meta/meta.go
package meta

// DEPTH is the default chess search depth in plies.
const DEPTH = 3

// GAMES is the number of games played per experiment matchup.
const GAMES = 10

// MAX_TURNS caps a game; an undecided game at the cap is a draw.
const MAX_TURNS = 300

// SEED seeds the random baseline agents.
const SEED = 1

// OUT_DIR is where experiment records are written.
const OUT_DIR = "experiments/results"
