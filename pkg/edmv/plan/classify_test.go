package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_UnchangedProducesNoOp(t *testing.T) {
	inputs := writeFiles(t, t.TempDir(), "a.txt")
	specs := []Spec{{Target: inputs[0]}}

	c, err := Classify(inputs, specs, Options{})
	require.NoError(t, err)
	assert.Empty(t, c.Deletes)
	assert.Empty(t, c.Renames)
	assert.Empty(t, c.Pending)
}

func TestClassify_PlainRename(t *testing.T) {
	dir := t.TempDir()
	inputs := writeFiles(t, dir, "a.txt")
	dest := filepath.Join(dir, "b.txt")
	specs := []Spec{{Target: dest}}

	c, err := Classify(inputs, specs, Options{})
	require.NoError(t, err)
	require.Len(t, c.Renames, 1)
	assert.Equal(t, RenameOp{Source: inputs[0], Dest: dest}, c.Renames[0])
	assert.True(t, c.Pending[inputs[0]])
}

func TestClassify_DeleteRequiresFlag(t *testing.T) {
	inputs := writeFiles(t, t.TempDir(), "x.txt")
	specs := []Spec{{Delete: true}}

	_, err := Classify(inputs, specs, Options{})
	require.ErrorIs(t, err, ErrDeleteNotEnabled)

	c, err := Classify(inputs, specs, Options{Delete: true})
	require.NoError(t, err)
	require.Len(t, c.Deletes, 1)
	assert.Equal(t, inputs[0], c.Deletes[0].Path)
	assert.Empty(t, c.Renames)
}

func TestClassify_DirectoryOverwriteRejected(t *testing.T) {
	dir := t.TempDir()
	inputs := writeFiles(t, dir, "a.txt")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	specs := []Spec{{Target: sub}}

	_, err := Classify(inputs, specs, Options{})
	assert.ErrorIs(t, err, ErrDirectoryOverwrite)

	// force does not bend this rule
	_, err = Classify(inputs, specs, Options{Force: true})
	assert.ErrorIs(t, err, ErrDirectoryOverwrite)
}

func TestClassify_DirectoryAsCycleMember(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// The directory itself is moving away in the same batch, so renaming
	// onto its path is a legitimate chain step.
	inputs := []string{file, sub}
	specs := []Spec{{Target: sub}, {Target: filepath.Join(dir, "renamed-dir")}}

	c, err := Classify(inputs, specs, Options{})
	require.NoError(t, err)
	assert.Len(t, c.Renames, 2)
}

func TestClassify_OverwriteRequiresForce(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, "a.txt", "existing.txt")
	inputs := paths[:1]
	specs := []Spec{{Target: paths[1]}}

	_, err := Classify(inputs, specs, Options{})
	require.ErrorIs(t, err, ErrOverwriteNotForced)

	c, err := Classify(inputs, specs, Options{Force: true})
	require.NoError(t, err)
	assert.Len(t, c.Renames, 1)
}

func TestClassify_ChainStepNeedsNoForce(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, "a.txt", "b.txt")

	// a -> b while b -> c: the destination is vacating, not overwritten.
	inputs := paths
	specs := []Spec{{Target: paths[1]}, {Target: filepath.Join(dir, "c.txt")}}

	c, err := Classify(inputs, specs, Options{})
	require.NoError(t, err)
	require.Len(t, c.Renames, 2)
	assert.True(t, c.Pending[paths[0]])
	assert.True(t, c.Pending[paths[1]])
}

func TestClassify_DeletedDestinationIsVacating(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, "a.txt", "b.txt")

	// b is deleted in the same batch, so a may take its path without force.
	inputs := paths
	specs := []Spec{{Target: paths[1]}, {Delete: true}}

	c, err := Classify(inputs, specs, Options{Delete: true})
	require.NoError(t, err)
	assert.Len(t, c.Deletes, 1)
	assert.Len(t, c.Renames, 1)
}

func TestClassify_NoFilesystemMutation(t *testing.T) {
	dir := t.TempDir()
	inputs := writeFiles(t, dir, "a.txt")
	specs := []Spec{{Target: filepath.Join(dir, "b.txt")}}

	_, err := Classify(inputs, specs, Options{})
	require.NoError(t, err)

	// Source untouched, destination not created.
	_, err = os.Stat(inputs[0])
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "b.txt"))
	assert.True(t, os.IsNotExist(err))
}
