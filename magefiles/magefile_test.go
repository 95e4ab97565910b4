//go:build mage

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountGoLines(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("a.go", "package a\n\nfunc A() {}\n")
	write("a_test.go", "package a\n\nfunc TestA() {}\n\n")
	write("sub/b.go", "package b\n")
	write("notes.txt", "not go\n")
	write("_examples/skip.go", "package skip\nvar X = 1\n")

	counts, err := countGoLines(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.production) // a.go (2) + sub/b.go (1)
	assert.Equal(t, 2, counts.tests)      // blank lines in a_test.go excluded
}
