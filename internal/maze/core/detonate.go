package core

import "fmt"

// blastOrder is the order in which a bomb casts its four rays.
var blastOrder = [4]Dir{DirRight, DirLeft, DirDown, DirUp}

// DamageEvent records one point of damage dealt to an enemy.
type DamageEvent struct {
	Coord     Coord
	LivesLeft int
	Destroyed bool
}

// Report describes what a detonation did to the grid.
type Report struct {
	Origin    Coord
	Triggered []Coord // Bombs in the order they exploded, origin first
	Damage    []DamageEvent
}

// BombsTriggered returns how many bombs exploded, chained ones included.
func (r Report) BombsTriggered() int {
	return len(r.Triggered)
}

// EnemiesDestroyed returns how many enemies were removed from the grid.
func (r Report) EnemiesDestroyed() int {
	n := 0
	for _, d := range r.Damage {
		if d.Destroyed {
			n++
		}
	}
	return n
}

// Detonate triggers whatever is at (x, y) and mutates the grid in place.
//
// Coordinates outside the grid return ErrOutOfBounds and leave the grid
// untouched. Detonating a cell that holds no bomb is a no-op.
//
// Blast rules, applied to every bomb that explodes:
//  1. The bomb records its range and piercing flag, then becomes Empty
//  2. A fresh hit marker is allocated for this bomb only, origin marked
//  3. Rays are cast Right, Left, Down, Up for up to range steps each:
//     - leaving the grid or reaching a marked cell stops the ray
//     - a deflector turns the ray and moves it once more in the same step
//     - a wall, or a rock for non-piercing blasts, stops the ray
//     - an unmarked cell takes one point of damage (enemies only) and is marked
//     - a bomb reached by the ray explodes immediately with its own marker,
//     then the ray carries on from the same position
func Detonate(g *Grid, x, y int) (Report, error) {
	origin := C(x, y)
	report := Report{Origin: origin}

	if !g.InBounds(origin) {
		return report, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, x, y, g.size, g.size)
	}
	if !g.At(origin).IsBomb() {
		return report, nil
	}

	d := detonation{grid: g, report: &report}
	d.explode(origin)
	return report, nil
}

// detonation carries the state shared by a chain of explosions.
type detonation struct {
	grid   *Grid
	report *Report
}

// explode runs the full blast of the bomb at origin.
func (d *detonation) explode(origin Coord) {
	bomb := d.grid.At(origin)
	reach := bomb.Value
	piercing := bomb.Kind == KindPiercingBomb

	// The bomb consumes itself before its blast is computed.
	d.grid.Set(origin, Empty())
	d.report.Triggered = append(d.report.Triggered, origin)

	hit := newMarker(d.grid.size)
	hit.set(origin)

	for _, dir := range blastOrder {
		d.castRay(origin, dir, reach, piercing, hit)
	}
}

// castRay propagates one ray of a blast.
func (d *detonation) castRay(origin Coord, dir Dir, reach int, piercing bool, hit *marker) {
	g := d.grid
	pos := origin

	for step := 0; step < reach; step++ {
		pos = pos.Step(dir)
		if !g.InBounds(pos) || hit.has(pos) {
			return
		}

		if obj := g.At(pos); obj.Kind == KindDeflector {
			dir = obj.Dir
			pos = pos.Step(dir)
			if !g.InBounds(pos) {
				return
			}
		}

		obj := g.At(pos)
		if obj.Blocks(piercing) {
			return
		}

		// Deflectors are transparent: never damaged, never marked.
		if obj.Kind != KindDeflector && !hit.has(pos) {
			if obj.Kind == KindEnemy {
				d.damage(pos, obj)
			}
			hit.set(pos)
		}

		if g.At(pos).IsBomb() {
			d.explode(pos)
		}
	}
}

// damage removes one life from the enemy at pos.
func (d *detonation) damage(pos Coord, enemy Object) {
	lives := enemy.Value - 1
	destroyed := lives <= 0
	if destroyed {
		d.grid.Set(pos, Empty())
	} else {
		d.grid.Set(pos, Enemy(lives))
	}
	d.report.Damage = append(d.report.Damage, DamageEvent{
		Coord:     pos,
		LivesLeft: max(lives, 0),
		Destroyed: destroyed,
	})
}

// marker tracks the cells already resolved by a single blast.
// Stored in row-major order: index = y*size + x.
type marker struct {
	size int
	hits []bool
}

func newMarker(size int) *marker {
	return &marker{size: size, hits: make([]bool, size*size)}
}

func (m *marker) set(c Coord) {
	m.hits[c.Y*m.size+c.X] = true
}

func (m *marker) has(c Coord) bool {
	return m.hits[c.Y*m.size+c.X]
}
