// Package core provides the maze model and the detonation engine.
// This package is UI-agnostic, deterministic and never performs I/O.
package core

import (
	"fmt"
	"strconv"
)

// Dir represents the direction a deflector sends a blast.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Letter returns the maze file letter for the direction.
func (d Dir) Letter() byte {
	switch d {
	case DirRight:
		return 'R'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	default:
		return 'U'
	}
}

// ParseDir converts a maze file letter (L, R, U, D) to a direction.
func ParseDir(c byte) (Dir, bool) {
	switch c {
	case 'L':
		return DirLeft, true
	case 'R':
		return DirRight, true
	case 'U':
		return DirUp, true
	case 'D':
		return DirDown, true
	default:
		return DirUp, false
	}
}

// Kind identifies what occupies a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindEnemy
	KindBomb
	KindPiercingBomb
	KindRock
	KindWall
	KindDeflector
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindEnemy:
		return "Enemy"
	case KindBomb:
		return "Bomb"
	case KindPiercingBomb:
		return "PiercingBomb"
	case KindRock:
		return "Rock"
	case KindWall:
		return "Wall"
	case KindDeflector:
		return "Deflector"
	default:
		return "Unknown"
	}
}

// Object is the content of a single maze cell.
// Value holds the lives of an enemy or the range of a bomb; Dir is
// meaningful only for deflectors. Objects are comparable with ==.
type Object struct {
	Kind  Kind
	Value int
	Dir   Dir
}

// Empty returns an inert object.
func Empty() Object { return Object{Kind: KindEmpty} }

// Enemy returns an enemy with the given number of lives.
func Enemy(lives int) Object { return Object{Kind: KindEnemy, Value: lives} }

// Bomb returns a normal bomb, blocked by rock.
func Bomb(reach int) Object { return Object{Kind: KindBomb, Value: reach} }

// PiercingBomb returns a bomb whose blast passes through rock.
func PiercingBomb(reach int) Object { return Object{Kind: KindPiercingBomb, Value: reach} }

// Rock returns a rock.
func Rock() Object { return Object{Kind: KindRock} }

// Wall returns a wall.
func Wall() Object { return Object{Kind: KindWall} }

// Deflector returns a deflector pointing in the given direction.
func Deflector(d Dir) Object { return Object{Kind: KindDeflector, Dir: d} }

// IsBomb reports whether the object can be detonated.
func (o Object) IsBomb() bool {
	return o.Kind == KindBomb || o.Kind == KindPiercingBomb
}

// Blocks reports whether the object stops a blast.
// Walls stop every blast, rocks only stop non-piercing ones.
func (o Object) Blocks(piercing bool) bool {
	switch o.Kind {
	case KindWall:
		return true
	case KindRock:
		return !piercing
	default:
		return false
	}
}

// Token returns the maze file token for the object (e.g. "F2", "DL", "_").
func (o Object) Token() string {
	switch o.Kind {
	case KindEnemy:
		return "F" + strconv.Itoa(o.Value)
	case KindBomb:
		return "B" + strconv.Itoa(o.Value)
	case KindPiercingBomb:
		return "S" + strconv.Itoa(o.Value)
	case KindRock:
		return "R"
	case KindWall:
		return "W"
	case KindDeflector:
		return "D" + string(o.Dir.Letter())
	default:
		return "_"
	}
}

// String returns a readable description of the object.
func (o Object) String() string {
	switch o.Kind {
	case KindEnemy, KindBomb, KindPiercingBomb:
		return fmt.Sprintf("%s(%d)", o.Kind, o.Value)
	case KindDeflector:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Dir)
	default:
		return o.Kind.String()
	}
}
