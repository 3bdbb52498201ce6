package plan

import (
	"fmt"
	"math/rand"
	"os"
	"time"
)

// tempAttempts bounds the number of candidate names tried per base path.
const tempAttempts = 10

// TempNamer produces collision-free placeholder paths used to break rename
// cycles. Candidates have the form <base>.edmv_<4 digits>. Randomness is not
// cryptographic; the only requirement is low collision probability within a
// single run. Existence is checked at generation time only; a collision
// arising later surfaces as an ordinary move failure.
type TempNamer struct {
	rand   *rand.Rand
	exists func(path string) bool
}

// NewTempNamer returns a TempNamer backed by the real filesystem.
func NewTempNamer() *TempNamer {
	return &TempNamer{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		exists: func(path string) bool {
			_, err := os.Lstat(path)
			return err == nil
		},
	}
}

// Generate returns a temporary path derived from base that does not
// currently exist on disk. It returns ErrTempNameExhausted after
// tempAttempts failed candidates.
func (t *TempNamer) Generate(base string) (string, error) {
	for i := 0; i < tempAttempts; i++ {
		candidate := fmt.Sprintf("%s.edmv_%04d", base, t.rand.Intn(10000))
		if !t.exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrTempNameExhausted, base)
}
