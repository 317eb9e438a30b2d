// Package levels provides maze file loading and saving.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
	"github.com/vovakirdan/maze-bomber/internal/maze/levels/formats"
)

// Maze represents a loaded maze file.
type Maze struct {
	ID         string // File name without extension
	Name       string
	Grid       *core.Grid
	Trigger    core.Coord
	HasTrigger bool
	Metadata   map[string]string
	FilePath   string
}

// Loader handles loading and saving maze files.
type Loader struct {
	Root    string
	Options formats.Options
	Logger  *log.Logger // Optional; skipped files are reported here
}

// NewLoader creates a new maze loader rooted at root.
func NewLoader(root string, opts formats.Options) *Loader {
	return &Loader{Root: root, Options: opts}
}

// LoadFile loads a single maze file. The format is picked by extension:
// .yaml/.yml use the YAML format, anything else is read as text.
func (l *Loader) LoadFile(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("%w: reading file %s: %v", core.ErrIO, path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	maze := Maze{ID: id, Name: id, FilePath: path}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parsed, err := formats.ParseYAML(data, l.Options)
		if err != nil {
			return Maze{}, fmt.Errorf("parsing file %s: %w", path, err)
		}
		maze.Grid = parsed.Grid
		maze.Trigger = parsed.Trigger
		maze.HasTrigger = parsed.HasTrigger
		maze.Metadata = parsed.Metadata
		if parsed.Name != "" {
			maze.Name = parsed.Name
		}
	default:
		grid, err := formats.DecodeText(data, l.Options)
		if err != nil {
			return Maze{}, fmt.Errorf("parsing file %s: %w", path, err)
		}
		maze.Grid = grid
	}

	return maze, nil
}

// Save writes the grid to path. The format is picked by extension like
// LoadFile: .yaml/.yml get the YAML format named after the file, anything
// else the text format.
func (l *Loader) Save(path string, g *core.Grid) error {
	data := formats.EncodeText(g)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		encoded, err := formats.MarshalYAML(formats.Maze{Name: name, Grid: g})
		if err != nil {
			return fmt.Errorf("encoding file %s: %w", path, err)
		}
		data = encoded
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing file %s: %v", core.ErrIO, path, err)
	}
	return nil
}

// LoadAll recursively scans Root and loads every maze file.
// Invalid files are skipped. Returns mazes sorted by ID.
func (l *Loader) LoadAll() ([]Maze, error) {
	var mazes []Maze

	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		maze, err := l.LoadFile(path)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping maze", "path", path, "error", err)
			}
			return nil
		}

		mazes = append(mazes, maze)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking directory %s: %v", core.ErrIO, l.Root, err)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})

	return mazes, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
