package snapshots

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const fileExt = ".json"

// FSBackend stores each resource as {basePath}/{name}.json.
type FSBackend struct {
	basePath string
}

// NewFSBackend constructs a filesystem backend rooted at basePath, creating
// the directory when needed.
func NewFSBackend(basePath string) (*FSBackend, error) {
	if basePath == "" {
		return nil, errors.New("snapshot base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FSBackend{basePath: basePath}, nil
}

// BasePath exposes the root directory (primarily for testing).
func (s *FSBackend) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

func (s *FSBackend) path(name string) string {
	return filepath.Join(s.basePath, name+fileExt)
}

// Load reads the resource file.
func (s *FSBackend) Load(ctx context.Context, name string) ([]byte, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Save writes to a temp file and renames it over the target so readers see
// either the old or the new snapshot. Unchanged content is not rewritten.
func (s *FSBackend) Save(ctx context.Context, name string, data []byte) error {
	if s == nil {
		return errors.New("snapshot writer not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	target := s.path(name)
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// List returns every stored resource name, sorted.
func (s *FSBackend) List(ctx context.Context) ([]string, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for the filesystem backend.
func (s *FSBackend) Close() error {
	return nil
}
