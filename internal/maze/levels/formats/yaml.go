package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
)

// YAMLMaze represents the YAML structure for a maze file.
type YAMLMaze struct {
	Name     string            `yaml:"name,omitempty"`
	Trigger  *YAMLCoord        `yaml:"trigger,omitempty"`
	Rows     [][]string        `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCoord is a trigger position in YAML format.
type YAMLCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Maze is a decoded maze file.
type Maze struct {
	Name       string
	Grid       *core.Grid
	Trigger    core.Coord
	HasTrigger bool
	Metadata   map[string]string
}

// ParseYAML parses a YAML maze file. Tokens use the text grammar.
func ParseYAML(data []byte, opts Options) (Maze, error) {
	var ym YAMLMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("%w: yaml unmarshal: %v", core.ErrMalformedInput, err)
	}

	rows := make([][]core.Object, 0, len(ym.Rows))
	for y, tokens := range ym.Rows {
		row, err := DecodeRow(strings.Join(tokens, " "), y, opts)
		if err != nil {
			return Maze{}, err
		}
		rows = append(rows, row)
	}

	grid, err := core.NewGrid(rows)
	if err != nil {
		return Maze{}, err
	}

	m := Maze{
		Name:     ym.Name,
		Grid:     grid,
		Metadata: ym.Metadata,
	}
	if ym.Trigger != nil {
		m.Trigger = core.C(ym.Trigger.X, ym.Trigger.Y)
		m.HasTrigger = true
	}
	return m, nil
}

// MarshalYAML encodes a maze in the YAML format.
func MarshalYAML(m Maze) ([]byte, error) {
	ym := YAMLMaze{
		Name:     m.Name,
		Metadata: m.Metadata,
	}
	if m.HasTrigger {
		ym.Trigger = &YAMLCoord{X: m.Trigger.X, Y: m.Trigger.Y}
	}
	for _, row := range m.Grid.Rows() {
		tokens := make([]string, len(row))
		for x, obj := range row {
			tokens[x] = obj.Token()
		}
		ym.Rows = append(ym.Rows, tokens)
	}

	data, err := yaml.Marshal(ym)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns the file extensions understood by the loader.
func FormatExtensions() []string {
	return []string{".txt", ".maze", ".yaml", ".yml"}
}
