package crack

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/blkph0x/rc4fun/algo/primitives"
	"github.com/blkph0x/rc4fun/algo/rc4"
)

var errEmptyKey = errors.New("empty candidate key")

// Backend runs one trial: decrypt the whole ciphertext with a candidate key
// and return a fresh buffer of the same length. Any error is fatal to the
// search that issued the trial; it is never retried.
type Backend interface {
	Decrypt(ciphertext []byte, key []byte) ([]byte, error)
}

// BackendError wraps a compute backend failure with the stage that failed,
// preserving the backend's diagnostic.
type BackendError struct {
	Stage string
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend failure at %s: %s", e.Stage, e.Err.Error())
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Parallel decrypts every ciphertext position independently, the way a GPU
// kernel would: each position rebuilds the key schedule in private state and
// advances it from scratch, so the positions share nothing and need no
// locking. Positions are split into contiguous chunks across worker
// goroutines; the trial returns only after every position has been written.
type Parallel struct {
	Workers int // 0 means runtime.NumCPU()
}

func (b *Parallel) Decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, &BackendError{Stage: "dispatch", Err: errEmptyKey}
	}

	out := make([]byte, len(ciphertext))
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunk := (len(ciphertext) + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < len(ciphertext); lo += chunk {
		hi := primitives.Min(lo+chunk, len(ciphertext))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for p := lo; p < hi; p++ {
				out[p] = ciphertext[p] ^ rc4.KeystreamAt(key, p)
			}
		}(lo, hi)
	}
	wg.Wait()
	return out, nil
}

// Sequential derives the keystream in a single pass per trial. Same output
// as Parallel, O(N) instead of O(N*N), for when wide parallelism is not
// wanted.
type Sequential struct{}

func (b *Sequential) Decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, &BackendError{Stage: "dispatch", Err: errEmptyKey}
	}

	// generate the gamma in one pass, then apply it
	gamma := make([]byte, len(ciphertext))
	var c rc4.RC4
	c.InitKey(key)
	c.XorInplace(gamma)

	out := make([]byte, len(ciphertext))
	copy(out, ciphertext)
	primitives.XorInplace(out, gamma, len(out))
	return out, nil
}
