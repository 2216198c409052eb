package autocomplete

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// Trie stores sentences with their insertion counts and answers
// most-frequent-completion queries. It is immutable once Build returns,
// so concurrent queries need no locking.
type Trie struct {
	root  *node
	size  int // sentences inserted, duplicates included
	nodes int
}

// Build inserts every sentence followed by a terminator, counting duplicates,
// then caches the subtree maximum frequency on every node.
//
// Each sentence must consist of bytes 'a'..'z' only; the empty sentence is
// allowed. On error no Trie is returned.
//
// Complexity: O(total characters) time and memory.
func Build(sentences []string, opts ...Option) (*Trie, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	for i, s := range sentences {
		if err := checkWord(s); err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
	}

	t := &Trie{root: &node{}, nodes: 1}
	for _, s := range sentences {
		t.insert(s)
	}
	t.cacheBest()

	cfg.Logger.WithFields(logrus.Fields{
		"sentences": t.size,
		"nodes":     t.nodes,
		"best":      t.root.best,
	}).Debug("autocomplete: trie built")

	return t, nil
}

func (t *Trie) insert(s string) {
	cur := t.root
	for i := 0; i < len(s); i++ {
		cur = t.child(cur, int(s[i]-'a'))
	}
	cur = t.child(cur, alphabet)
	cur.freq++
	t.size++
}

// child returns cur.children[slot], creating it if absent.
func (t *Trie) child(cur *node, slot int) *node {
	if cur.children[slot] == nil {
		cur.children[slot] = &node{}
		t.nodes++
	}

	return cur.children[slot]
}

// cacheBest sets best bottom-up. Nodes are collected in pre-order with an
// explicit stack, so walking the list backwards visits children before parents.
func (t *Trie) cacheBest() {
	order := make([]*node, 0, t.nodes)
	var stack deque.Deque[*node]
	stack.PushBack(t.root)
	for stack.Len() > 0 {
		cur := stack.PopBack()
		order = append(order, cur)
		for _, c := range cur.children {
			if c != nil {
				stack.PushBack(c)
			}
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		cur := order[i]
		best := cur.freq
		for _, c := range cur.children {
			if c != nil && c.best > best {
				best = c.best
			}
		}
		cur.best = best
	}
}

// Complete returns the completion of prefix with the highest frequency,
// the lexicographically smallest one on ties. prefix itself is returned when
// it was inserted and no longer sentence beats it.
//
// From the node reached by prefix the descent stops at a terminator holding
// the subtree maximum, otherwise it follows the first letter, in ascending
// order, whose subtree holds it.
//
// Errors: ErrInvalidCharacter, ErrNotFound.
// Complexity: O(len(prefix) + len(result)).
func (t *Trie) Complete(prefix string) (string, error) {
	if err := checkWord(prefix); err != nil {
		return "", err
	}

	cur := t.walk(prefix)
	if cur == nil || cur.best == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, prefix)
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	for {
		if end := cur.children[alphabet]; end != nil && end.freq == cur.best {
			break
		}
		next := -1
		for c := 0; c < alphabet; c++ {
			if ch := cur.children[c]; ch != nil && ch.best == cur.best {
				next = c
				break
			}
		}
		if next < 0 {
			// best is cached from the children, so this is unreachable on a built trie.
			break
		}
		sb.WriteByte(byte('a' + next))
		cur = cur.children[next]
	}

	return sb.String(), nil
}

// Frequency returns how many times word was inserted, 0 if never.
func (t *Trie) Frequency(word string) (int, error) {
	if err := checkWord(word); err != nil {
		return 0, err
	}
	cur := t.walk(word)
	if cur == nil || cur.children[alphabet] == nil {
		return 0, nil
	}

	return cur.children[alphabet].freq, nil
}

// Len returns the number of inserted sentences, duplicates included.
func (t *Trie) Len() int { return t.size }

// walk follows s from the root and returns the node reached, nil if s leaves the trie.
func (t *Trie) walk(s string) *node {
	cur := t.root
	for i := 0; i < len(s) && cur != nil; i++ {
		cur = cur.children[s[i]-'a']
	}

	return cur
}

func checkWord(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
	}

	return nil
}
