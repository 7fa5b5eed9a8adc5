// Package trie implements a simple prefix tree over dictionary words.
// It is the structure the solver queries to prune its board walk; it
// answers prefix and whole-word membership in time proportional to the
// length of the query.
package trie

import (
	"sort"
	"strings"
)

// Node is a single letter position in some prefix of some dictionary
// word. Nodes are created lazily during insertion and never deleted.
type Node struct {
	children map[rune]*Node
	terminal bool
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// Trie owns the root node. The root carries no letter and is never
// terminal. Build it once per game; it is read-only afterwards and
// therefore safe to share between concurrent searches.
type Trie struct {
	root *Node
}

// New builds a trie containing every word in the given list.
func New(words []string) *Trie {
	t := &Trie{root: newNode()}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds a word to the trie, creating nodes as needed and marking
// the final node terminal. Insertion is idempotent; re-inserting a word
// or a covered prefix changes nothing beyond the terminal mark.
func (t *Trie) Insert(word string) {
	node := t.root
	for _, r := range strings.ToLower(word) {
		child, ok := node.children[r]
		if !ok {
			child = newNode()
			node.children[r] = child
		}
		node = child
	}
	node.terminal = true
}

// walk follows s from the root, returning the final node, or nil as
// soon as a required child is absent.
func (t *Trie) walk(s string) *Node {
	node := t.root
	for _, r := range strings.ToLower(s) {
		node = node.children[r]
		if node == nil {
			return nil
		}
	}
	return node
}

// ContainsPrefix returns whether s is a prefix of any inserted word.
// Any inserted word is a prefix of itself.
func (t *Trie) ContainsPrefix(s string) bool {
	return t.walk(s) != nil
}

// ContainsWord returns whether s was itself inserted as a whole word.
func (t *Trie) ContainsWord(s string) bool {
	node := t.walk(s)
	return node != nil && node.terminal
}

// ChildLetters returns the sorted letters reachable from the node at
// prefix, for debugging. Not used by the solver.
func (t *Trie) ChildLetters(prefix string) []rune {
	node := t.walk(prefix)
	if node == nil {
		return nil
	}
	letters := make([]rune, 0, len(node.children))
	for r := range node.children {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
