package types

import "fmt"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells is the number of cells on the grid, which is also the longest a
// snake can get.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Game constants
const (
	MaxGridSide   = 255 // Largest width or height accepted
	DefaultWidth  = 15
	DefaultHeight = 10
)

// Point is a grid cell. Body segments and food are both points.
type Point struct {
	X, Y int
}

// Add returns p moved one cell towards d.
func (p Point) Add(d Direction) Point {
	off := d.ToPoint()
	return Point{X: p.X + off.X, Y: p.Y + off.Y}
}

// Direction is a cardinal heading.
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction to its unit offset. Y grows downwards.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		panic(fmt.Sprintf("types: unknown direction %d", int(d)))
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		panic(fmt.Sprintf("types: unknown direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// Intent is one logical input command, delivered at most once per tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentRestart
	IntentQuit
)

// Direction returns the heading a turn intent asks for, or NONE.
func (i Intent) Direction() Direction {
	switch i {
	case IntentUp:
		return UP
	case IntentDown:
		return DOWN
	case IntentLeft:
		return LEFT
	case IntentRight:
		return RIGHT
	default:
		return NONE
	}
}

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	default:
		return fmt.Sprintf("intent(%d)", int(i))
	}
}
