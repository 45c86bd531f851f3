package crack

import (
	"errors"
)

// Cursor enumerates every key of a single fixed length over an alphabet, in
// odometer order: the first candidate is the alphabet's first symbol repeated,
// the last position advances fastest, and the most significant position rolls
// over last. A cursor is finite and restartable only by constructing a new one.
type Cursor struct {
	alphabet []byte
	idx      []int
	done     bool
}

func NewCursor(alphabet []byte, length int) (*Cursor, error) {
	if len(alphabet) == 0 {
		return nil, errors.New("empty alphabet")
	}
	if length < 1 {
		return nil, errors.New("key length must be positive")
	}
	var seen [256]bool
	for _, c := range alphabet {
		if seen[c] {
			return nil, errors.New("alphabet symbols must be distinct")
		}
		seen[c] = true
	}

	a := make([]byte, len(alphabet))
	copy(a, alphabet)
	return &Cursor{
		alphabet: a,
		idx:      make([]int, length),
	}, nil
}

// Next returns the next candidate key, or nil when the length is exhausted.
// Every call returns a fresh slice: candidates are never reused or mutated
// after being handed out.
func (c *Cursor) Next() []byte {
	if c.done {
		return nil
	}

	key := make([]byte, len(c.idx))
	for i, x := range c.idx {
		key[i] = c.alphabet[x]
	}

	for i := len(c.idx) - 1; i >= 0; i-- {
		c.idx[i]++
		if c.idx[i] < len(c.alphabet) {
			return key
		}
		c.idx[i] = 0
	}
	c.done = true
	return key
}

// Keyspace returns the total number of candidates for all lengths 1..maxKeyLength.
func Keyspace(alphabetSize int, maxKeyLength int) uint64 {
	var total, pow uint64 = 0, 1
	for l := 1; l <= maxKeyLength; l++ {
		pow *= uint64(alphabetSize)
		total += pow
	}
	return total
}
