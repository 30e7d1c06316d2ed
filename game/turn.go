package game

import "github.com/wordgridgame/wordgrid/move"

// A Turn is an accepted placement plus the points it scored. Turns are
// numbered from 1; turn n's word starts with turn n-1's last letter.
type Turn struct {
	num       int
	placement *move.Placement
	score     int
}

func (t *Turn) Number() int {
	return t.num
}

func (t *Turn) Placement() *move.Placement {
	return t.placement
}

func (t *Turn) Word() string {
	return t.placement.Word()
}

func (t *Turn) Score() int {
	return t.score
}
