package executor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattgleeson/edmv/pkg/edmv/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDeleter records deletions and can be primed to fail.
type fakeDeleter struct {
	deleted []string
	failOn  string
}

func (f *fakeDeleter) Delete(path string) error {
	if f.failOn != "" && path == f.failOn {
		return errors.New("simulated delete failure")
	}
	f.deleted = append(f.deleted, path)
	return os.Remove(path)
}

// failMover fails every move; used to prove deletions run first.
type failMover struct{}

func (failMover) Move(src, dst string) error {
	return errors.New("simulated move failure")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestApply_RenamesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	writeFile(t, a, "content a")

	p := &plan.Plan{Renames: []plan.RenameOp{{Source: a, Dest: filepath.Join(dir, "b.txt")}}}

	err := New(&fakeDeleter{}, RenameMover{}).Apply(p)
	require.NoError(t, err)

	assert.Equal(t, "content a", readFile(t, filepath.Join(dir, "b.txt")))
	_, statErr := os.Stat(a)
	assert.True(t, os.IsNotExist(statErr))
}

func TestApply_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.txt")
	writeFile(t, src, "report")
	dest := filepath.Join(dir, "new", "sub", "report.txt")

	p := &plan.Plan{Renames: []plan.RenameOp{{Source: src, Dest: dest}}}

	err := New(&fakeDeleter{}, RenameMover{}).Apply(p)
	require.NoError(t, err)
	assert.Equal(t, "report", readFile(t, dest))
}

func TestApply_DeletesBeforeRenames(t *testing.T) {
	dir := t.TempDir()
	gone := filepath.Join(dir, "gone.txt")
	writeFile(t, gone, "gone")
	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, "src")

	deleter := &fakeDeleter{}
	p := &plan.Plan{
		Deletes: []plan.DeleteOp{{Path: gone}},
		Renames: []plan.RenameOp{{Source: src, Dest: filepath.Join(dir, "dst.txt")}},
	}

	err := New(deleter, failMover{}).Apply(p)
	require.Error(t, err)

	// The deletion was applied before the failing rename halted the run.
	assert.Equal(t, []string{gone}, deleter.deleted)
	assert.Equal(t, "src", readFile(t, src))
}

func TestApply_FirstFailureHalts(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	writeFile(t, first, "1")
	writeFile(t, second, "2")

	deleter := &fakeDeleter{failOn: first}
	p := &plan.Plan{Deletes: []plan.DeleteOp{{Path: first}, {Path: second}}}

	err := New(deleter, RenameMover{}).Apply(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), first)

	// Nothing past the failure was attempted.
	assert.Empty(t, deleter.deleted)
	assert.Equal(t, "2", readFile(t, second))
}

func TestApply_SwapPipeline(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "content a")
	writeFile(t, b, "content b")

	p, err := plan.Build([]string{a, b}, b+"\n"+a+"\n", plan.Options{})
	require.NoError(t, err)

	require.NoError(t, New(&fakeDeleter{}, RenameMover{}).Apply(p))

	assert.Equal(t, "content b", readFile(t, a))
	assert.Equal(t, "content a", readFile(t, b))

	// No temporary hop file survives.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.Contains(entry.Name(), ".edmv_"), "leftover temp file %s", entry.Name())
	}
}

func TestApply_CyclePipeline(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a.txt", "b.txt", "c.txt"}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		writeFile(t, paths[i], name)
	}

	// a -> b -> c -> a
	edited := paths[1] + "\n" + paths[2] + "\n" + paths[0] + "\n"
	p, err := plan.Build(paths, edited, plan.Options{})
	require.NoError(t, err)

	require.NoError(t, New(&fakeDeleter{}, RenameMover{}).Apply(p))

	assert.Equal(t, "a.txt", readFile(t, paths[1]))
	assert.Equal(t, "b.txt", readFile(t, paths[2]))
	assert.Equal(t, "c.txt", readFile(t, paths[0]))
}

func TestApply_IdempotentRerun(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "content a")
	writeFile(t, b, "content b")

	edited := b + "\n" + a + "\n"
	p, err := plan.Build([]string{a, b}, edited, plan.Options{})
	require.NoError(t, err)
	require.NoError(t, New(&fakeDeleter{}, RenameMover{}).Apply(p))

	// Re-running with the now-current names and an unchanged listing
	// compiles to an empty plan.
	p2, err := plan.Build([]string{a, b}, a+"\n"+b+"\n", plan.Options{})
	require.NoError(t, err)
	assert.True(t, p2.Empty())
}

func TestApply_DeleteDisabledLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	x := filepath.Join(dir, "x.txt")
	writeFile(t, x, "x")

	_, err := plan.Build([]string{x}, "\n", plan.Options{})
	require.ErrorIs(t, err, plan.ErrDeleteNotEnabled)

	_, statErr := os.Stat(x)
	assert.NoError(t, statErr)
}
