// Package persistence reads and writes worlds as YAML files on disk.
package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arlyon/holding/internal/world"
)

// WorldFileName is the file a world is stored in within its directory.
const WorldFileName = "world.yaml"

// ErrWorldExists is returned when creating over a non-empty directory.
var ErrWorldExists = errors.New("a world already exists at this path")

// Store loads and saves worlds rooted at a directory.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a store for the world at path. The path may point at
// the world directory or directly at its world.yaml.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// file resolves the world.yaml path inside the store's directory.
func (s *Store) file() string {
	if filepath.Base(s.path) == WorldFileName {
		return s.path
	}
	return filepath.Join(s.path, WorldFileName)
}

// Load reads and validates the world.
func (s *Store) Load() (*world.World, error) {
	data, err := os.ReadFile(s.file())
	if err != nil {
		return nil, fmt.Errorf("failed to read world: %w", err)
	}

	var w world.World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("world file is corrupted: %w", err)
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate world: %w", err)
	}

	s.logger.Debug("world loaded",
		zap.String("name", w.Name),
		zap.Int64("time", w.Time.Seconds()))

	return &w, nil
}

// Save writes the world back to disk.
func (s *Store) Save(w *world.World) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal world: %w", err)
	}

	if err := os.WriteFile(s.file(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write world: %w", err)
	}

	s.logger.Debug("world saved", zap.String("name", w.Name))
	return nil
}

// Create makes a fresh default world at the store's path. It refuses to
// touch a non-empty directory unless force is set.
func (s *Store) Create(name string, force bool) (*world.World, error) {
	dir := filepath.Dir(s.file())

	if !force {
		entries, err := os.ReadDir(dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if len(entries) > 0 {
			return nil, ErrWorldExists
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create world directory: %w", err)
	}

	w := world.Default(name)
	if err := s.Save(w); err != nil {
		return nil, err
	}

	s.logger.Info("world created",
		zap.String("name", name),
		zap.String("path", s.file()))

	return w, nil
}
