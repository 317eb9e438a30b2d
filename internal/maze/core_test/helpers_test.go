package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
	"github.com/vovakirdan/maze-bomber/internal/maze/levels/formats"
)

// mustGrid decodes text rows into a grid, failing the test on error.
func mustGrid(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g, err := formats.DecodeText([]byte(strings.Join(rows, "\n")), formats.DefaultOptions())
	if err != nil {
		t.Fatalf("decoding grid: %v", err)
	}
	return g
}

// referenceMaze is the 7x7 maze used by the end-to-end scenario.
func referenceMaze(t *testing.T) *core.Grid {
	return mustGrid(t,
		"B2 R R _ F1 _ _",
		"_ W R W _ W _",
		"B5 _ _ _ B2 _ _",
		"_ W _ W _ W _",
		"_ _ _ _ _ _ _",
		"_ W _ W _ W _",
		"_ _ _ _ _ _ _",
	)
}

func expectObject(t *testing.T, g *core.Grid, x, y int, want core.Object) {
	t.Helper()
	if got := g.At(core.C(x, y)); got != want {
		t.Errorf("at (%d,%d): expected %v, got %v", x, y, want, got)
	}
}
