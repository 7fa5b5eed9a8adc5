package boardgen

import (
	"testing"

	"github.com/matryer/is"
)

func TestRandomShape(t *testing.T) {
	is := is.New(t)
	b, err := Random(4, 5)
	is.NoErr(err)
	w, h := b.Dim()
	is.Equal(w, 4)
	is.Equal(h, 5)
	is.Equal(b.NumCells(), 20)
}

func TestRandomLettersAreLowercaseASCII(t *testing.T) {
	is := is.New(t)
	b, err := Random(6, 6)
	is.NoErr(err)
	for i := 0; i < b.NumCells(); i++ {
		r := b.Letter(i)
		is.True(r >= 'a' && r <= 'z')
	}
}

func TestRandomRejectsBadDims(t *testing.T) {
	is := is.New(t)
	_, err := Random(-1, 3)
	is.True(err != nil)
}

func TestPoolMatchesCounts(t *testing.T) {
	is := is.New(t)
	total := 0
	for _, n := range englishTileCounts {
		total += n
	}
	is.Equal(len(pool), total)
}
