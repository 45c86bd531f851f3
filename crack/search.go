package crack

import (
	"errors"
	"fmt"
	"time"
)

// Result is the outcome of a completed search. Key is non-nil iff a candidate
// was accepted; an exhausted search carries only the telemetry fields.
type Result struct {
	Key       []byte
	Plaintext []byte
	Tried     uint64
	Elapsed   time.Duration
}

func (r *Result) Found() bool {
	return r.Key != nil
}

// Search tries every key over the alphabet, lengths ascending from 1 to
// maxKeyLength, decrypting the ciphertext with each candidate on the backend
// and stopping at the first decryption the oracle accepts. Trials run one at
// a time; a backend failure aborts the whole search. The caller always gets
// exactly one of: an accepted key with its plaintext, an exhausted result,
// or an error.
func Search(b Backend, ciphertext []byte, alphabet []byte, maxKeyLength int) (*Result, error) {
	// validate before any trial runs
	if _, err := NewCursor(alphabet, 1); err != nil {
		return nil, err
	}
	if maxKeyLength < 1 {
		return nil, errors.New("max key length must be positive")
	}

	res := &Result{}
	start := time.Now()

	for length := 1; length <= maxKeyLength; length++ {
		cur, err := NewCursor(alphabet, length)
		if err != nil {
			return nil, err
		}
		for key := cur.Next(); key != nil; key = cur.Next() {
			decrypted, err := b.Decrypt(ciphertext, key)
			if err != nil {
				return nil, fmt.Errorf("trial %q: %w", key, err)
			}
			res.Tried++
			if Plausible(decrypted) {
				res.Key = key
				res.Plaintext = decrypted
				res.Elapsed = time.Since(start)
				return res, nil
			}
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
