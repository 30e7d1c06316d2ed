package board

import (
	"fmt"
	"strings"

	"github.com/wordgridgame/wordgrid/move"
)

// ToDisplayText renders the grid for the terminal: lettered columns,
// numbered rows, filler dots for empty squares.
func (g *Grid) ToDisplayText() string {
	rows, cols := g.Dims()
	var str string
	hdr := "   "
	for j := 0; j < cols; j++ {
		hdr = hdr + fmt.Sprintf("%c", 'A'+j) + " "
	}
	str = str + hdr + "\n"
	str = str + "   " + strings.Repeat("-", cols*2) + "\n"
	for i := 0; i < rows; i++ {
		row := fmt.Sprintf("%2d|", i)
		for j := 0; j < cols; j++ {
			row = row + g.squares[i][j].DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", cols*2) + "\n"
	return "\n" + str
}

// SetFromPlaintext fills the grid from row strings, using '.' or ' ' for
// empty squares. Rows shorter than the grid leave the remainder empty.
// Meant for tests.
func (g *Grid) SetFromPlaintext(desc []string) {
	g.Clear()
	for i, rowstr := range desc {
		for j, ch := range rowstr {
			if ch == '.' || ch == ' ' {
				continue
			}
			g.SetLetter(move.Cell{Row: i, Col: j}, ch, 0)
		}
	}
}
