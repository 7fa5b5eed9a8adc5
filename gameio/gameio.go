// Package gameio reads and writes the tool's text framing: two size
// lines, the board rows, then dictionary entries until end of input.
// It validates shape before anything reaches the solver, which assumes
// well-formed input.
package gameio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cardboard-games/boggler/board"
	"github.com/cardboard-games/boggler/solver"
)

// Game is a fully validated board plus its dictionary, ready to solve.
type Game struct {
	Board      *board.Board
	Dictionary []string
}

// Parse reads a game from r. The expected layout is:
//
//	width
//	height
//	<height> board rows, one cell per character (spaces between cells
//	are tolerated)
//	remaining lines: one dictionary word each, until EOF
//
// Dictionary words shorter than the solver's minimum are dropped here;
// the solver re-checks length on emission, so this is only pruning.
func Parse(r io.Reader) (*Game, error) {
	scanner := bufio.NewScanner(r)

	width, err := readDim(scanner, "width")
	if err != nil {
		return nil, err
	}
	height, err := readDim(scanner, "height")
	if err != nil {
		return nil, err
	}

	cells := make([]string, 0, width*height)
	for row := 0; row < height; row++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading board row %d: %w", row+1, err)
			}
			return nil, fmt.Errorf("board row %d missing", row+1)
		}
		line := strings.ReplaceAll(scanner.Text(), " ", "")
		if len([]rune(line)) != width {
			return nil, fmt.Errorf("board row %d has %d cells, want %d",
				row+1, len([]rune(line)), width)
		}
		for _, r := range line {
			cells = append(cells, string(r))
		}
	}

	b, err := board.New(width, height, cells)
	if err != nil {
		return nil, err
	}

	var dict []string
	skipped := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if len(word) < solver.MinWordLength {
			skipped++
			continue
		}
		dict = append(dict, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	log.Debug().
		Int("width", width).
		Int("height", height).
		Int("words", len(dict)).
		Int("skipped-short", skipped).
		Msg("parsed game")

	return &Game{Board: b, Dictionary: dict}, nil
}

func readDim(scanner *bufio.Scanner, name string) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", name, err)
		}
		return 0, fmt.Errorf("%s line missing", name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, scanner.Text(), err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}

// WriteWords writes one word per line to w.
func WriteWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintln(bw, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}
