package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/wordgridgame/wordgrid/lexicon"
	"github.com/wordgridgame/wordgrid/move"
)

func testGame() *Game {
	seed := Seed{Letter: 'C', Cell: move.Cell{Row: 2, Col: 2}}
	return NewGame(5, 5, testLexicon(), seed)
}

func TestNewGamePlacesSeed(t *testing.T) {
	is := is.New(t)
	g := testGame()
	is.Equal(g.Grid().GetLetter(move.Cell{Row: 2, Col: 2}), 'C')
	is.Equal(g.RequiredStartLetter(), 'C')
	is.Equal(g.Anchor(), move.Cell{Row: 2, Col: 2})
	is.Equal(g.Score(), 0)
}

func TestPlayChain(t *testing.T) {
	is := is.New(t)
	g := testGame()

	// CAT east from the seed cell.
	p, err := g.Play("CAT", move.East)
	is.NoErr(err)
	is.Equal(p.Last(), move.Cell{Row: 2, Col: 4})
	is.Equal(g.Score(), 3)
	is.Equal(g.RequiredStartLetter(), 'T')
	is.Equal(g.Anchor(), move.Cell{Row: 2, Col: 4})

	// TAP south, anchored on CAT's T.
	_, err = g.Play("TAP", move.South)
	is.NoErr(err)
	is.Equal(g.Score(), 6)
	is.Equal(g.RequiredStartLetter(), 'P')

	// PIE west from TAP's P.
	_, err = g.Play("PIE", move.West)
	is.NoErr(err)
	is.Equal(g.Score(), 9)
	is.Equal(g.NumTurns(), 3)
	is.Equal(g.History().Words(), []string{"CAT", "TAP", "PIE"})
}

func TestFirstWordMustStartWithSeedLetter(t *testing.T) {
	is := is.New(t)
	g := testGame()
	_, err := g.Play("TAP", move.East)
	is.Equal(rejectionReason(t, err), LinkMismatch)
	is.Equal(g.NumTurns(), 0)
}

func TestRejectedPlayChangesNothing(t *testing.T) {
	is := is.New(t)
	g := testGame()
	_, err := g.Play("CAT", move.East)
	is.NoErr(err)

	gridBefore := g.Grid().Copy()
	wordsBefore := g.History().Words()
	scoreBefore := g.Score()

	for _, attempt := range []struct {
		word string
		dir  move.Direction
	}{
		{"DOG", move.South}, // link mismatch
		{"TAT", move.South}, // not in dictionary
		{"CAT", move.South}, // link mismatch before repetition
		{"TAP", move.East},  // out of bounds (east off col 4)
	} {
		_, err := g.Play(attempt.word, attempt.dir)
		is.True(err != nil)
		is.True(g.Grid().Equals(gridBefore))
		is.Equal(g.History().Words(), wordsBefore)
		is.Equal(g.Score(), scoreBefore)
	}
}

func TestRepeatedWordRejected(t *testing.T) {
	is := is.New(t)
	seed := Seed{Letter: 'T', Cell: move.Cell{Row: 2, Col: 2}}
	g := NewGame(5, 5, lexicon.NewSet("test", []string{"TAT"}), seed)

	_, err := g.Play("TAT", move.East)
	is.NoErr(err)
	// TAT again, correctly linked on its own T.
	_, err = g.Play("TAT", move.West)
	is.Equal(rejectionReason(t, err), AlreadyUsed)
}

func TestPlayAtExplicitStart(t *testing.T) {
	is := is.New(t)
	g := testGame()
	// Starting away from the anchor on an empty path.
	p, err := g.PlayAt("CAT", move.Cell{Row: 0, Col: 0}, move.South)
	is.NoErr(err)
	is.Equal(p.Cells(), []move.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}})
}

func TestRejectionErrorIsTyped(t *testing.T) {
	is := is.New(t)
	g := testGame()
	_, err := g.Play("DOG", move.East)
	var rej *RejectionError
	is.True(errors.As(err, &rej))
	is.Equal(rej.Reason, LinkMismatch)
	is.True(rej.Error() != "")
}
