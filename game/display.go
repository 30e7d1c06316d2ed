package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ToDisplayText turns the current state of the game into a displayable
// string: the grid, the score, and the word chain so far.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.grid.ToDisplayText())
	sb.WriteString(fmt.Sprintf("Score: %d\n", g.score))
	if len(g.turns) > 0 {
		chain := lo.Map(g.turns, func(t *Turn, _ int) string {
			return t.Word()
		})
		sb.WriteString("Chain: " + strings.Join(chain, " → ") + "\n")
	}
	sb.WriteString(fmt.Sprintf("Next word starts with: %c\n", g.RequiredStartLetter()))
	return sb.String()
}
