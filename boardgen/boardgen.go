// Package boardgen generates random letter boards for testing and play.
// Letters are drawn with English tile frequencies rather than uniformly,
// so generated boards contain enough vowels to be solvable.
package boardgen

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/cardboard-games/boggler/board"
)

// englishTileCounts mirrors the standard English letter distribution
// (a:9 ... z:1, 98 tiles total, no blanks).
var englishTileCounts = map[rune]int{
	'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12, 'f': 2, 'g': 3,
	'h': 2, 'i': 9, 'j': 1, 'k': 1, 'l': 4, 'm': 2, 'n': 6,
	'o': 8, 'p': 2, 'q': 1, 'r': 6, 's': 4, 't': 6, 'u': 4,
	'v': 2, 'w': 2, 'x': 1, 'y': 2, 'z': 1,
}

// pool is the flattened tile bag we draw from, built once.
var pool []rune

func init() {
	for r := 'a'; r <= 'z'; r++ {
		for i := 0; i < englishTileCounts[r]; i++ {
			pool = append(pool, r)
		}
	}
}

// Random returns a width x height board of letters drawn independently
// from the English tile distribution.
func Random(width, height int) (*board.Board, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("board dimensions must be non-negative, got %dx%d", width, height)
	}
	cells := make([]string, width*height)
	for i := range cells {
		cells[i] = string(pool[frand.Intn(len(pool))])
	}
	b, err := board.New(width, height, cells)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("width", width).Int("height", height).Msg("generated board")
	return b, nil
}
