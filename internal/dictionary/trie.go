// Package dictionary provides the prefix dictionary used for word suggestions.
package dictionary

import "slices"

// MaxSuggestions is the hard cap on results returned by Suggest.
const MaxSuggestions = 10

// node is a single trie node. Children are keyed by rune and owned
// exclusively by their parent.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// sortedKeys returns the child runes in ascending order so traversal is
// deterministic regardless of map iteration order.
func (n *node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

// Trie stores a vocabulary of tokens and answers prefix queries.
// It performs no normalization; callers choose case folding.
type Trie struct {
	root  *node
	count int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds a token. Inserting the same token twice is a no-op.
// Empty tokens are ignored.
func (t *Trie) Insert(token string) {
	if token == "" {
		return
	}

	current := t.root
	for _, r := range token {
		child, ok := current.children[r]
		if !ok {
			child = newNode()
			current.children[r] = child
		}
		current = child
	}

	if !current.terminal {
		current.terminal = true
		t.count++
	}
}

// InsertAll inserts every token in order.
func (t *Trie) InsertAll(tokens []string) {
	for _, token := range tokens {
		t.Insert(token)
	}
}

// find walks the trie along prefix and returns the node reached, or nil.
func (t *Trie) find(prefix string) *node {
	current := t.root
	for _, r := range prefix {
		child, ok := current.children[r]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// Contains reports whether token was inserted.
func (t *Trie) Contains(token string) bool {
	if token == "" {
		return false
	}
	n := t.find(token)
	return n != nil && n.terminal
}

// Len returns the number of distinct tokens stored.
func (t *Trie) Len() int {
	return t.count
}

// Suggest returns up to MaxSuggestions stored tokens beginning with prefix.
// A terminal node is emitted before its descendants and children are
// visited in ascending rune order. An unknown prefix yields an empty slice.
func (t *Trie) Suggest(prefix string) []string {
	suggestions := make([]string, 0, MaxSuggestions)

	start := t.find(prefix)
	if start == nil {
		return suggestions
	}

	collect(start, []rune(prefix), &suggestions)
	return suggestions
}

func collect(n *node, path []rune, out *[]string) {
	if len(*out) >= MaxSuggestions {
		return
	}

	if n.terminal {
		*out = append(*out, string(path))
	}

	for _, r := range n.sortedKeys() {
		if len(*out) >= MaxSuggestions {
			return
		}
		collect(n.children[r], append(path, r), out)
	}
}

// Walk calls fn for every stored token beginning with prefix, in the same
// order Suggest uses but without the result cap. Returning false from fn
// stops the walk.
func (t *Trie) Walk(prefix string, fn func(token string) bool) {
	start := t.find(prefix)
	if start == nil {
		return
	}
	walk(start, []rune(prefix), fn)
}

func walk(n *node, path []rune, fn func(string) bool) bool {
	if n.terminal && !fn(string(path)) {
		return false
	}
	for _, r := range n.sortedKeys() {
		if !walk(n.children[r], append(path, r), fn) {
			return false
		}
	}
	return true
}
