// Package solver implements the backtracking board search. Starting
// from every cell it extends simple paths (no repeated cell) through
// grid-adjacent neighbors, using the trie to cut off any branch that
// is no longer a prefix of a dictionary word.
package solver

import (
	"github.com/cardboard-games/boggler/board"
	"github.com/cardboard-games/boggler/trie"
)

// MinWordLength is the shortest word the search will report.
const MinWordLength = 3

// Solver searches one board against one dictionary trie. The trie is
// never mutated, so a single trie may back any number of solvers.
type Solver struct {
	board *board.Board
	trie  *trie.Trie

	// per-Solve scratch state
	visited []bool
	found   map[string]bool
	words   []string
}

// New creates a solver for the given board and trie.
func New(b *board.Board, t *trie.Trie) *Solver {
	return &Solver{board: b, trie: t}
}

// Solve returns every distinct dictionary word of length >= 3 that can
// be traced as a path of adjacent, non-repeating cells, in the order
// each word was first discovered. Repeated calls return the same set.
func (s *Solver) Solve() []string {
	s.visited = make([]bool, s.board.NumCells())
	s.found = make(map[string]bool)
	s.words = []string{}
	for idx := 0; idx < s.board.NumCells(); idx++ {
		first := string(s.board.Letter(idx))
		if s.trie.ContainsPrefix(first) {
			s.search(idx, first)
		}
	}
	return s.words
}

// search extends the path currently ending at idx, whose letters spell
// word. The caller guarantees word is a prefix of some dictionary word,
// so the only checks left here are terminality and where to go next.
func (s *Solver) search(idx int, word string) {
	s.visited[idx] = true
	defer func() { s.visited[idx] = false }()

	if len(word) >= MinWordLength && s.trie.ContainsWord(word) {
		s.emit(word)
	}
	for _, n := range s.board.Neighbors(idx) {
		if s.visited[n] {
			continue
		}
		next := word + string(s.board.Letter(n))
		if !s.trie.ContainsPrefix(next) {
			continue
		}
		s.search(n, next)
	}
}

// emit records a word exactly once; later discoveries of the same word
// via other paths are silent no-ops.
func (s *Solver) emit(word string) {
	if s.found[word] {
		return
	}
	s.found[word] = true
	s.words = append(s.words, word)
}
