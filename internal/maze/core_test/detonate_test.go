package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
)

func TestDetonateNonBombIsNoOp(t *testing.T) {
	g := mustGrid(t,
		"_ R W",
		"DL F1 B1",
		"DU S2 _",
	)

	for _, c := range []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(0, 1), core.C(1, 1), core.C(0, 2)} {
		before := g.Clone()
		report, err := core.Detonate(g, c.X, c.Y)
		if err != nil {
			t.Errorf("Detonate%v: unexpected error %v", c, err)
		}
		if !g.Equal(before) {
			t.Errorf("Detonate%v on %v changed the grid", c, before.At(c))
		}
		if report.BombsTriggered() != 0 {
			t.Errorf("Detonate%v: expected no bombs triggered, got %d", c, report.BombsTriggered())
		}
	}
}

func TestDetonateOutOfBounds(t *testing.T) {
	g := referenceMaze(t)
	size := g.Size()

	for _, c := range []core.Coord{core.C(size, 0), core.C(0, size), core.C(-1, 0), core.C(0, -1)} {
		before := g.Clone()
		_, err := core.Detonate(g, c.X, c.Y)
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("Detonate%v: expected ErrOutOfBounds, got %v", c, err)
		}
		if !g.Equal(before) {
			t.Errorf("Detonate%v modified the grid", c)
		}
	}
}

func TestDetonateConsumesBomb(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
	}{
		{"zero range", []string{"B0 F1", "_ _"}},
		{"boxed in", []string{"W W W", "W B3 W", "W W W"}},
		{"piercing", []string{"S2 R", "R F1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows...)
			size := g.Size()
			origin := core.C(size/2, size/2)
			if !g.At(origin).IsBomb() {
				origin = core.C(0, 0)
			}

			if _, err := core.Detonate(g, origin.X, origin.Y); err != nil {
				t.Fatalf("Detonate failed: %v", err)
			}
			expectObject(t, g, origin.X, origin.Y, core.Empty())
		})
	}
}

func TestDetonateZeroRangeTouchesNothingElse(t *testing.T) {
	g := mustGrid(t, "B0 F1", "F1 _")

	if _, err := core.Detonate(g, 0, 0); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}
	expectObject(t, g, 1, 0, core.Enemy(1))
	expectObject(t, g, 0, 1, core.Enemy(1))
}

func TestDetonateWallBlocks(t *testing.T) {
	for _, bomb := range []string{"B3", "S3"} {
		t.Run(bomb, func(t *testing.T) {
			g := mustGrid(t,
				bomb+" W F1",
				"_ _ _",
				"_ _ _",
			)

			if _, err := core.Detonate(g, 0, 0); err != nil {
				t.Fatalf("Detonate failed: %v", err)
			}
			expectObject(t, g, 1, 0, core.Wall())
			expectObject(t, g, 2, 0, core.Enemy(1))
		})
	}
}

func TestDetonatePiercingVsRock(t *testing.T) {
	piercing := mustGrid(t, "S3 R F1", "_ _ _", "_ _ _")
	if _, err := core.Detonate(piercing, 0, 0); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}
	expectObject(t, piercing, 1, 0, core.Rock())
	expectObject(t, piercing, 2, 0, core.Empty())

	normal := mustGrid(t, "B3 R F1", "_ _ _", "_ _ _")
	if _, err := core.Detonate(normal, 0, 0); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}
	expectObject(t, normal, 1, 0, core.Rock())
	expectObject(t, normal, 2, 0, core.Enemy(1))
}

func TestDetonateDamagesEnemyOnce(t *testing.T) {
	g := mustGrid(t, "B2 F3 _", "_ _ _", "_ _ _")

	report, err := core.Detonate(g, 0, 0)
	if err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}
	expectObject(t, g, 1, 0, core.Enemy(2))

	if len(report.Damage) != 1 {
		t.Fatalf("expected 1 damage event, got %d", len(report.Damage))
	}
	if report.Damage[0].LivesLeft != 2 || report.Damage[0].Destroyed {
		t.Errorf("unexpected damage event: %+v", report.Damage[0])
	}
	if report.EnemiesDestroyed() != 0 {
		t.Errorf("expected no enemies destroyed, got %d", report.EnemiesDestroyed())
	}
}

func TestDetonateDeflection(t *testing.T) {
	g := mustGrid(t,
		"B2 DD F1",
		"_ F1 _",
		"_ _ _",
	)

	if _, err := core.Detonate(g, 0, 0); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 1, 1, core.Empty())
	expectObject(t, g, 2, 0, core.Enemy(1))
	expectObject(t, g, 1, 0, core.Deflector(core.DirDown))
}

func TestDetonateDeflectionIntoWall(t *testing.T) {
	g := mustGrid(t,
		"B3 DD F1",
		"_ W _",
		"_ F1 _",
	)

	if _, err := core.Detonate(g, 0, 0); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 1, 1, core.Wall())
	expectObject(t, g, 1, 2, core.Enemy(1))
	expectObject(t, g, 2, 0, core.Enemy(1))
}

func TestDetonateDeflectionOffGrid(t *testing.T) {
	g := mustGrid(t,
		"B3 DU F1",
		"_ _ _",
		"_ _ _",
	)

	if _, err := core.Detonate(g, 0, 0); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 0, 0, core.Empty())
	expectObject(t, g, 1, 0, core.Deflector(core.DirUp))
	expectObject(t, g, 2, 0, core.Enemy(1))
}

func TestDetonateDeflectorLoop(t *testing.T) {
	// The right ray travels around the ring of deflectors back to the
	// origin, which is already marked, so the enemy is hit exactly once.
	g := mustGrid(t,
		"B20 _ DD",
		"_ _ _",
		"DU F5 DL",
	)

	report, err := core.Detonate(g, 0, 0)
	if err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 1, 2, core.Enemy(4))
	expectObject(t, g, 2, 0, core.Deflector(core.DirDown))
	expectObject(t, g, 2, 2, core.Deflector(core.DirLeft))
	expectObject(t, g, 0, 2, core.Deflector(core.DirUp))

	if len(report.Damage) != 1 {
		t.Errorf("expected 1 damage event, got %d", len(report.Damage))
	}
}

func TestDetonateBendOntoDeflector(t *testing.T) {
	// The bend at (1,0) lands on the deflector at (1,1). It is left
	// unmarked and does not turn the ray again, so the next step goes
	// down to (1,2) and the enemy at (2,1) is never reached.
	g := mustGrid(t,
		"B2 DD _",
		"_ DR F1",
		"_ F1 _",
	)

	report, err := core.Detonate(g, 0, 0)
	if err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 1, 2, core.Empty())
	expectObject(t, g, 2, 1, core.Enemy(1))
	expectObject(t, g, 1, 1, core.Deflector(core.DirRight))
	expectObject(t, g, 1, 0, core.Deflector(core.DirDown))

	if report.EnemiesDestroyed() != 1 {
		t.Errorf("expected 1 enemy destroyed, got %d", report.EnemiesDestroyed())
	}
}

func TestDetonateChainReaction(t *testing.T) {
	g := mustGrid(t,
		"B1 B5 _ _ _ _ F1",
		"_ _ _ _ _ _ _",
		"_ _ _ _ _ _ _",
		"_ _ _ _ _ _ _",
		"_ _ _ _ _ _ _",
		"_ _ _ _ _ _ _",
		"_ _ _ _ _ _ _",
	)

	report, err := core.Detonate(g, 0, 0)
	if err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 0, 0, core.Empty())
	expectObject(t, g, 1, 0, core.Empty())
	expectObject(t, g, 6, 0, core.Empty())

	want := []core.Coord{core.C(0, 0), core.C(1, 0)}
	if len(report.Triggered) != len(want) {
		t.Fatalf("expected chain %v, got %v", want, report.Triggered)
	}
	for i := range want {
		if report.Triggered[i] != want[i] {
			t.Errorf("chain[%d]: expected %v, got %v", i, want[i], report.Triggered[i])
		}
	}
	if report.EnemiesDestroyed() != 1 {
		t.Errorf("expected 1 enemy destroyed, got %d", report.EnemiesDestroyed())
	}
}

func TestDetonateChainUsesOwnMarker(t *testing.T) {
	// The first blast damages the enemy, then the chained bomb's blast
	// reaches the same enemy again because it tracks its own hits.
	g := mustGrid(t,
		"B2 F3 B2",
		"_ _ _",
		"_ _ _",
	)

	report, err := core.Detonate(g, 0, 0)
	if err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 1, 0, core.Enemy(1))
	expectObject(t, g, 2, 0, core.Empty())
	if len(report.Damage) != 2 {
		t.Errorf("expected 2 damage events, got %d", len(report.Damage))
	}
}

func TestDetonateChainPiercingFlagIsPerBomb(t *testing.T) {
	// A normal bomb chains a piercing bomb, whose blast goes through rock.
	g := mustGrid(t,
		"B1 S3 _",
		"_ R _",
		"_ F1 _",
	)

	if _, err := core.Detonate(g, 0, 0); err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 1, 0, core.Empty())
	expectObject(t, g, 1, 1, core.Rock())
	expectObject(t, g, 1, 2, core.Empty())
}

func TestDetonateReferenceMaze(t *testing.T) {
	g := referenceMaze(t)

	report, err := core.Detonate(g, 4, 2)
	if err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 4, 2, core.Empty())
	expectObject(t, g, 4, 0, core.Empty())
	expectObject(t, g, 1, 1, core.Wall())

	// Out of reach of the range-2 blast
	expectObject(t, g, 0, 0, core.Bomb(2))
	expectObject(t, g, 0, 2, core.Bomb(5))
	expectObject(t, g, 2, 1, core.Rock())

	if report.BombsTriggered() != 1 {
		t.Errorf("expected 1 bomb triggered, got %d", report.BombsTriggered())
	}
}

func TestDetonateReferenceMazeChain(t *testing.T) {
	g := referenceMaze(t)

	// B5 at (0,2) reaches B2 at (4,2), which destroys the enemy at (4,0).
	// Upward it passes (0,1) and reaches B2 at (0,0), which is stopped
	// by the rock at (1,0).
	report, err := core.Detonate(g, 0, 2)
	if err != nil {
		t.Fatalf("Detonate failed: %v", err)
	}

	expectObject(t, g, 0, 2, core.Empty())
	expectObject(t, g, 4, 2, core.Empty())
	expectObject(t, g, 0, 0, core.Empty())
	expectObject(t, g, 4, 0, core.Empty())
	expectObject(t, g, 1, 0, core.Rock())
	expectObject(t, g, 2, 0, core.Rock())

	if report.BombsTriggered() != 3 {
		t.Errorf("expected 3 bombs triggered, got %d: %v", report.BombsTriggered(), report.Triggered)
	}
}

func TestDetonateIsDeterministic(t *testing.T) {
	g1 := referenceMaze(t)
	g2 := referenceMaze(t)

	r1, _ := core.Detonate(g1, 0, 2)
	r2, _ := core.Detonate(g2, 0, 2)

	if !g1.Equal(g2) {
		t.Error("same detonation produced different grids")
	}
	if len(r1.Triggered) != len(r2.Triggered) {
		t.Fatalf("chain length mismatch: %d vs %d", len(r1.Triggered), len(r2.Triggered))
	}
	for i := range r1.Triggered {
		if r1.Triggered[i] != r2.Triggered[i] {
			t.Errorf("chain[%d] mismatch: %v vs %v", i, r1.Triggered[i], r2.Triggered[i])
		}
	}
}
