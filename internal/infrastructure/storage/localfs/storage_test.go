package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageListsRegularFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.txt", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	s, err := New(dir)
	require.NoError(t, err)

	keys, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.md"}, keys)
}

func TestStorageOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("hello"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	rc, err := s.Open(context.Background(), "note.txt")
	require.NoError(t, err)
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
}

func TestStorageRejectsEscapingKeys(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../etc/passwd", "sub/file.txt"} {
		_, err := s.Open(context.Background(), key)
		assert.Error(t, err, key)
	}
}

func TestNewRequiresDirectory(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = New(file)
	assert.Error(t, err)
}
