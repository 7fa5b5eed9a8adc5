package gameio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleInput = `3
2
cat
dog
cat
cod
at
good
`

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleInput))
	assert.NoError(t, err)
	w, h := g.Board.Dim()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	// "at" is below the minimum length and dropped during parsing.
	assert.Equal(t, []string{"cat", "cod", "good"}, g.Dictionary)
}

func TestParseSpacedRows(t *testing.T) {
	g, err := Parse(strings.NewReader("2\n2\na b\nc d\nabc\n"))
	assert.NoError(t, err)
	assert.Equal(t, 4, g.Board.NumCells())
	assert.Equal(t, 'd', g.Board.Letter(3))
}

func TestParseBlankDictionaryLines(t *testing.T) {
	g, err := Parse(strings.NewReader("1\n1\na\n\ncat\n\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat"}, g.Dictionary)
}

func TestParseEmptyDictionary(t *testing.T) {
	g, err := Parse(strings.NewReader("1\n1\na\n"))
	assert.NoError(t, err)
	assert.Empty(t, g.Dictionary)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing height", "3\n"},
		{"bad width", "x\n2\n"},
		{"zero width", "0\n2\n"},
		{"negative height", "2\n-1\n"},
		{"missing row", "2\n2\nab\n"},
		{"short row", "3\n1\nab\n"},
		{"long row", "2\n1\nabc\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestWriteWords(t *testing.T) {
	var sb strings.Builder
	err := WriteWords(&sb, []string{"cat", "dog"})
	assert.NoError(t, err)
	assert.Equal(t, "cat\ndog\n", sb.String())
}
