package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolveGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "")
	writeFile(t, filepath.Join(dir, "nested", "b.yaml"), "")
	writeFile(t, filepath.Join(dir, "nested", "c.json"), "")

	files, err := resolveGlobs([]string{filepath.Join(dir, "**", "*.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "nested", "b.yaml"),
	}, files)
}

func TestResolveGlobs_LiteralPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	writeFile(t, path, "")

	files, err := resolveGlobs([]string{path, path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	_, err = resolveGlobs([]string{filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	writeFile(t, path, `
prefixes:
  ex: http://example.com/
triples:
  - subject: ex:a
    predicate: ex:p
    object: ex:b
`)

	g, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	_, err = parseFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
