package plan

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempNamer_GeneratesFreePath(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(base, []byte("a"), 0o644))

	name, err := NewTempNamer().Generate(base)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, base+".edmv_"))
	_, statErr := os.Lstat(name)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTempNamer_SkipsOccupiedCandidates(t *testing.T) {
	calls := 0
	namer := &TempNamer{
		rand: rand.New(rand.NewSource(42)),
		exists: func(string) bool {
			calls++
			return calls <= 3
		},
	}

	name, err := namer.Generate("base")
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.Contains(t, name, "base.edmv_")
}

func TestTempNamer_Exhaustion(t *testing.T) {
	namer := &TempNamer{
		rand:   rand.New(rand.NewSource(1)),
		exists: func(string) bool { return true },
	}

	_, err := namer.Generate("base")
	require.ErrorIs(t, err, ErrTempNameExhausted)
	assert.Contains(t, err.Error(), "base")
}
