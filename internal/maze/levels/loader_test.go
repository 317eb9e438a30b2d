package levels

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
	"github.com/vovakirdan/maze-bomber/internal/maze/levels/formats"
)

// getTestdataPath returns path to testdata/mazes.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "mazes")
}

func TestLoaderLoadText(t *testing.T) {
	loader := NewLoader(getTestdataPath(), formats.DefaultOptions())

	maze, err := loader.LoadFile(filepath.Join(getTestdataPath(), "reference.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if maze.ID != "reference" {
		t.Errorf("expected ID 'reference', got %q", maze.ID)
	}
	if maze.Grid.Size() != 7 {
		t.Errorf("expected size 7, got %d", maze.Grid.Size())
	}
	if got := maze.Grid.At(core.C(0, 0)); got != core.Bomb(2) {
		t.Errorf("expected Bomb(2) at (0,0), got %v", got)
	}
	if cell := maze.Grid.Cell(core.C(1, 1)); cell.Object != core.Wall() || cell.X() != 1 || cell.Y() != 1 {
		t.Errorf("expected wall cell at (1,1), got %+v", cell)
	}
	if maze.HasTrigger {
		t.Error("text mazes carry no trigger")
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := NewLoader(getTestdataPath(), formats.DefaultOptions())

	maze, err := loader.LoadFile(filepath.Join(getTestdataPath(), "deflectors.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if maze.Name != "Deflector loop" {
		t.Errorf("expected name 'Deflector loop', got %q", maze.Name)
	}
	if !maze.HasTrigger || maze.Trigger != core.C(0, 0) {
		t.Errorf("expected trigger (0,0), got %v", maze.Trigger)
	}
	if maze.Grid.Size() != 3 {
		t.Errorf("expected size 3, got %d", maze.Grid.Size())
	}
}

func TestLoaderErrors(t *testing.T) {
	loader := NewLoader(getTestdataPath(), formats.DefaultOptions())

	_, err := loader.LoadFile(filepath.Join(getTestdataPath(), "missing.txt"))
	if !errors.Is(err, core.ErrIO) {
		t.Errorf("expected ErrIO for missing file, got %v", err)
	}

	_, err = loader.LoadFile(filepath.Join(getTestdataPath(), "broken.txt"))
	if !errors.Is(err, core.ErrMalformedGrid) {
		t.Errorf("expected ErrMalformedGrid for broken maze, got %v", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(getTestdataPath(), formats.DefaultOptions())

	mazes, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.txt is skipped, README.md is not a maze
	if len(mazes) != 2 {
		t.Fatalf("expected 2 mazes, got %d", len(mazes))
	}
	if mazes[0].ID != "deflectors" || mazes[1].ID != "reference" {
		t.Errorf("mazes not sorted by ID: %s, %s", mazes[0].ID, mazes[1].ID)
	}
}

func TestLoaderSaveDetonated(t *testing.T) {
	loader := NewLoader(getTestdataPath(), formats.DefaultOptions())

	maze, err := loader.LoadFile(filepath.Join(getTestdataPath(), "reference.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, err := core.Detonate(maze.Grid, 4, 2); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.txt")
	if err := loader.Save(out, maze.Grid); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	want := "B2 R R _ _ _ _\n" +
		"_ W R W _ W _\n" +
		"B5 _ _ _ _ _ _\n" +
		"_ W _ W _ W _\n" +
		"_ _ _ _ _ _ _\n" +
		"_ W _ W _ W _\n" +
		"_ _ _ _ _ _ _\n"
	if string(data) != want {
		t.Errorf("saved maze mismatch:\nexpected:\n%s\ngot:\n%s", want, data)
	}
}

func TestLoaderSaveFailure(t *testing.T) {
	loader := NewLoader(getTestdataPath(), formats.DefaultOptions())

	err := loader.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"), core.NewEmptyGrid(1))
	if !errors.Is(err, core.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestLoaderSaveYAML(t *testing.T) {
	loader := NewLoader(getTestdataPath(), formats.DefaultOptions())

	maze, err := loader.LoadFile(filepath.Join(getTestdataPath(), "reference.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, err := core.Detonate(maze.Grid, 4, 2); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "after.yaml")
	if err := loader.Save(out, maze.Grid); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved, err := loader.LoadFile(out)
	if err != nil {
		t.Fatalf("reloading saved maze: %v", err)
	}
	if saved.Name != "after" {
		t.Errorf("expected name 'after', got %q", saved.Name)
	}
	if saved.HasTrigger {
		t.Error("saved maze should not carry a trigger")
	}
	if !saved.Grid.Equal(maze.Grid) {
		t.Errorf("saved grid differs:\n%s\nwant:\n%s", core.RenderGrid(saved.Grid), core.RenderGrid(maze.Grid))
	}
}
