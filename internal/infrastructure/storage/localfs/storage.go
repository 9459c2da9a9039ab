package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Storage exposes the regular files of one directory as import sources.
type Storage struct {
	basePath string
}

func New(basePath string) (*Storage, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("import dir is empty")
	}
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("stat import dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("import dir %s is not a directory", basePath)
	}
	return &Storage{basePath: basePath}, nil
}

// List returns file names in lexical order. Hidden files and subdirectories
// are skipped.
func (s *Storage) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, fmt.Errorf("read import dir: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		keys = append(keys, entry.Name())
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Storage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

func (s *Storage) resolve(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == ".." {
		return "", fmt.Errorf("invalid source key %q", key)
	}
	return filepath.Join(s.basePath, key), nil
}
