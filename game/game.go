package game

import (
	"github.com/rs/zerolog/log"

	"github.com/wordgridgame/wordgrid/board"
	"github.com/wordgridgame/wordgrid/lexicon"
	"github.com/wordgridgame/wordgrid/move"
)

// A Game is one session of the word grid puzzle: a grid seeded with a
// single letter, a lexicon, and the chain of accepted turns. A word
// scores one point per letter; each word must start with the previous
// word's last letter and is anchored at the previous word's last cell.
type Game struct {
	grid    *board.Grid
	lex     lexicon.Lexicon
	history *History
	turns   []*Turn
	score   int
	seed    Seed
}

// NewGame creates a session and writes the seed letter onto the grid.
func NewGame(rows, cols int, lex lexicon.Lexicon, seed Seed) *Game {
	g := &Game{
		grid:    board.New(rows, cols),
		lex:     lex,
		history: NewHistory(),
		seed:    seed,
	}
	g.grid.SetLetter(seed.Cell, seed.Letter, 0)
	log.Debug().Str("letter", string(seed.Letter)).Str("cell", seed.Cell.String()).
		Msg("new game")
	return g
}

func (g *Game) Grid() *board.Grid {
	return g.grid
}

func (g *Game) Lexicon() lexicon.Lexicon {
	return g.lex
}

func (g *Game) History() *History {
	return g.history
}

func (g *Game) Turns() []*Turn {
	return g.turns
}

func (g *Game) NumTurns() int {
	return len(g.turns)
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Seed() Seed {
	return g.seed
}

// RequiredStartLetter is the link letter the next word must start with:
// the seed letter before any turn, then the last letter of the last
// accepted word.
func (g *Game) RequiredStartLetter() rune {
	if len(g.turns) == 0 {
		return g.seed.Letter
	}
	last := g.turns[len(g.turns)-1]
	return rune(last.Placement().LastLetter())
}

// Anchor is the cell the next word starts at: the seed cell before any
// turn, then the last cell of the last accepted word.
func (g *Game) Anchor() move.Cell {
	if len(g.turns) == 0 {
		return g.seed.Cell
	}
	return g.turns[len(g.turns)-1].Placement().Last()
}

// Play validates a word going in the given direction from the current
// anchor and, if accepted, commits it: the grid is written, the word is
// recorded in the history, and the score goes up by one point per
// letter. On rejection nothing changes and the error carries the
// rejection reason.
func (g *Game) Play(word string, dir move.Direction) (*move.Placement, error) {
	return g.PlayAt(word, g.Anchor(), dir)
}

// PlayAt is Play with an explicit starting cell.
func (g *Game) PlayAt(word string, start move.Cell, dir move.Direction) (*move.Placement, error) {
	p, err := AttemptPlacement(g.grid, g.history, g.RequiredStartLetter(),
		word, start, dir, g.lex)
	if err != nil {
		return nil, err
	}
	turn := &Turn{num: len(g.turns) + 1, placement: p, score: len(p.Word())}
	g.grid.Apply(p, turn.num)
	g.history.Add(p.Word())
	g.turns = append(g.turns, turn)
	g.score += turn.score
	log.Debug().Str("play", p.ShortDescription()).Int("score", g.score).
		Msg("accepted placement")
	return p, nil
}
