package autocomplete

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidInput is the category every validation error wraps.
	ErrInvalidInput = errors.New("autocomplete: invalid input")

	// ErrInvalidCharacter indicates a byte outside 'a'..'z' in a sentence or query.
	ErrInvalidCharacter = fmt.Errorf("%w: only lowercase letters a-z are allowed", ErrInvalidInput)

	// ErrNotFound indicates no stored sentence starts with the prefix.
	ErrNotFound = errors.New("autocomplete: no completion")
)

// alphabet is the number of letter slots; slot alphabet is the terminator.
const alphabet = 26

// node is one trie vertex. Letter children live in slots 0..25, the
// terminator child in slot 26. freq is meaningful on terminator nodes only;
// best is the highest freq of any sentence in the subtree.
type node struct {
	children [alphabet + 1]*node
	freq     int
	best     int
}

// Options configures Build.
//   - Logger: receives a Debug summary of the built trie.
type Options struct {
	Logger logrus.FieldLogger
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithLogger routes Debug tracing to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options logging to the logrus standard logger.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}
