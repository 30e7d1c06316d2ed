package game

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"lukechampine.com/frand"

	"github.com/wordgridgame/wordgrid/move"
)

// A Seed is the starting letter and its grid position. In daily mode it
// is derived from the calendar date so every player sees the same start
// on a given day.
type Seed struct {
	Letter rune
	Cell   move.Cell
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailySeed derives the seed for a date. HMAC-SHA256(salt, date key)
// keys a deterministic RNG which picks the letter and cell.
func DailySeed(date time.Time, salt string, rows, cols int) Seed {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	rng := frand.NewCustom(h.Sum(nil), 1024, 12)
	return Seed{
		Letter: rune('A' + rng.Intn(26)),
		Cell:   move.Cell{Row: rng.Intn(rows), Col: rng.Intn(cols)},
	}
}

// RandomSeed picks a fresh seed for free play.
func RandomSeed(rows, cols int) Seed {
	return Seed{
		Letter: rune('A' + frand.Intn(26)),
		Cell:   move.Cell{Row: frand.Intn(rows), Col: frand.Intn(cols)},
	}
}
