package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Direction is one of the four cardinal directions a word can be
// written in.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// delta maps a direction to its (row, col) step. Keeping this as a
// table keeps the path-walking code direction-agnostic.
var delta = [4][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "?"
}

// Delta returns the per-letter row and column step for this direction.
func (d Direction) Delta() (int, int) {
	return delta[d][0], delta[d][1]
}

// ParseDirection parses a direction from user input. It accepts the
// single letters N, S, E, W as well as the full names, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return North, nil
	case "S", "SOUTH":
		return South, nil
	case "E", "EAST":
		return East, nil
	case "W", "WEST":
		return West, nil
	}
	return North, fmt.Errorf("invalid direction %q; use one of N, S, E, W", s)
}

// A Cell is a single grid coordinate. Row 0, col 0 is the top left.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Step returns the cell one step away in the given direction.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

var reCoords = regexp.MustCompile(`^(?P<row>[0-9]+)\s*,\s*(?P<col>[0-9]+)$`)

// ParseCoords parses a "row,col" coordinate pair.
func ParseCoords(s string) (Cell, error) {
	matches := reCoords.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return Cell{}, fmt.Errorf("invalid coordinates %q; use row,col", s)
	}
	row, err := strconv.Atoi(matches[1])
	if err != nil {
		return Cell{}, err
	}
	col, err := strconv.Atoi(matches[2])
	if err != nil {
		return Cell{}, err
	}
	return Cell{Row: row, Col: col}, nil
}

// A Placement is a word written into the grid along a direction from a
// starting cell. Cells holds the resolved path, one cell per letter, in
// write order; it includes cells that were already occupied by the same
// letter (overlap no-ops), since scoring is per word and the next word
// anchors at the last cell regardless.
type Placement struct {
	word  string
	start Cell
	dir   Direction
	cells []Cell
}

// NewPlacement creates a placement and resolves its path. The word is
// normalized to upper case. It does no bounds checking; callers validate
// the resolved cells against their grid.
func NewPlacement(word string, start Cell, dir Direction) *Placement {
	word = strings.ToUpper(word)
	cells := make([]Cell, 0, len(word))
	cur := start
	for range word {
		cells = append(cells, cur)
		cur = cur.Step(dir)
	}
	return &Placement{word: word, start: start, dir: dir, cells: cells}
}

func (p *Placement) Word() string {
	return p.word
}

func (p *Placement) Start() Cell {
	return p.start
}

func (p *Placement) Direction() Direction {
	return p.dir
}

func (p *Placement) Cells() []Cell {
	return p.cells
}

// Last is the cell of the word's final letter; the next word in the
// chain anchors here.
func (p *Placement) Last() Cell {
	return p.cells[len(p.cells)-1]
}

// LastLetter is the link letter the next word must start with.
func (p *Placement) LastLetter() byte {
	return p.word[len(p.word)-1]
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (p *Placement) ShortDescription() string {
	return fmt.Sprintf("%v %v %v", p.start, p.dir, p.word)
}
