package board

import (
	"fmt"

	"github.com/wordgridgame/wordgrid/move"
)

// EmptySquare marks a square with no letter on it.
const EmptySquare rune = 0

// A Square is a single square in the grid. It holds a letter, if any,
// and the 1-based index of the turn that first wrote it (0 for the seed
// letter). Overlapping writes keep the original turn index.
type Square struct {
	letter rune
	turn   int
}

func (s *Square) Letter() rune {
	return s.letter
}

func (s *Square) Turn() int {
	return s.turn
}

func (s *Square) IsEmpty() bool {
	return s.letter == EmptySquare
}

func (s Square) String() string {
	if s.letter == EmptySquare {
		return "<empty>"
	}
	return fmt.Sprintf("<%c (turn %d)>", s.letter, s.turn)
}

// DisplayString renders the square for the terminal grid; empty squares
// show as the filler dot.
func (s Square) DisplayString() string {
	if s.letter == EmptySquare {
		return "."
	}
	return string(s.letter)
}

// A Grid is the main board structure: a fixed-size 2D arrangement of
// squares that words are written into.
type Grid struct {
	squares    [][]*Square
	hasLetters bool
}

// New creates an empty grid with the given dimensions.
func New(rows, cols int) *Grid {
	sq := make([][]*Square, rows)
	for i := range sq {
		row := make([]*Square, cols)
		for j := range row {
			row[j] = &Square{letter: EmptySquare}
		}
		sq[i] = row
	}
	return &Grid{squares: sq}
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (int, int) {
	if len(g.squares) == 0 {
		return 0, 0
	}
	return len(g.squares), len(g.squares[0])
}

func (g *Grid) InBounds(c move.Cell) bool {
	rows, cols := g.Dims()
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

func (g *Grid) GetSquare(c move.Cell) *Square {
	return g.squares[c.Row][c.Col]
}

func (g *Grid) GetLetter(c move.Cell) rune {
	return g.squares[c.Row][c.Col].letter
}

// SetLetter writes a letter to a cell. An occupied square keeps its
// original turn index; callers must not change an occupied square's
// letter (the placement validator enforces this).
func (g *Grid) SetLetter(c move.Cell, letter rune, turn int) {
	sq := g.squares[c.Row][c.Col]
	if sq.letter == EmptySquare {
		sq.turn = turn
	}
	sq.letter = letter
	g.hasLetters = true
}

// Apply writes an already-validated placement onto the grid.
func (g *Grid) Apply(p *move.Placement, turn int) {
	word := p.Word()
	for i, c := range p.Cells() {
		g.SetLetter(c, rune(word[i]), turn)
	}
}

// IsEmpty returns whether any letter has been placed yet.
func (g *Grid) IsEmpty() bool {
	return !g.hasLetters
}

// Clear clears the grid.
func (g *Grid) Clear() {
	for _, row := range g.squares {
		for _, sq := range row {
			sq.letter = EmptySquare
			sq.turn = 0
		}
	}
	g.hasLetters = false
}

// Copy returns a deep copy of the grid. Used by tests to check that
// rejected placements leave the grid untouched.
func (g *Grid) Copy() *Grid {
	sq := make([][]*Square, len(g.squares))
	for i, row := range g.squares {
		sq[i] = make([]*Square, len(row))
		for j, s := range row {
			c := *s
			sq[i][j] = &c
		}
	}
	return &Grid{squares: sq, hasLetters: g.hasLetters}
}

// Equals compares letters and turn indexes square by square.
func (g *Grid) Equals(other *Grid) bool {
	rows, cols := g.Dims()
	orows, ocols := other.Dims()
	if rows != orows || cols != ocols {
		return false
	}
	for i, row := range g.squares {
		for j, sq := range row {
			if *sq != *other.squares[i][j] {
				return false
			}
		}
	}
	return true
}
