package entity

import (
	"fmt"

	"ring-snake/game/ring"
	"ring-snake/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake is a body stored in a ring of grid points. The live segments are
// the slots head, Next(head), ..., tail; every other slot holds stale data.
// New heads are taken from Prev(head), so the ring never has to move data.
type Snake struct {
	body      *ring.Ring[types.Point]
	head      int
	tail      int
	length    int
	Direction types.Direction
	Color     Color
}

// NewSnake wraps body, which must have exactly one slot per grid cell so
// a free slot exists for every cell the snake has yet to cover.
func NewSnake(body *ring.Ring[types.Point], grid types.Grid, color Color) *Snake {
	if body.Cap() != grid.Cells() {
		panic(fmt.Sprintf("entity: ring capacity %d does not match %dx%d grid", body.Cap(), grid.Width, grid.Height))
	}
	s := &Snake{
		body:      body,
		Direction: types.RIGHT,
		Color:     color,
	}
	s.Reset(types.Point{}, types.RIGHT)
	return s
}

// Reset shrinks the snake to a single segment at start, stored in the
// ring's first slot.
func (s *Snake) Reset(start types.Point, dir types.Direction) {
	s.head = s.body.First()
	s.tail = s.head
	s.length = 1
	s.body.Set(s.head, start)
	s.Direction = dir
}

// Move pushes newHead in front of the current head.
func (s *Snake) Move(newHead types.Point) {
	if s.Full() {
		panic("entity: no free slot for a new head")
	}
	s.head = s.body.Prev(s.head)
	s.body.Set(s.head, newHead)
	s.length++
}

// RemoveTail releases the oldest segment.
func (s *Snake) RemoveTail() {
	if s.length <= 1 {
		panic("entity: cannot remove the last segment")
	}
	s.tail = s.body.Prev(s.tail)
	s.length--
}

func (s *Snake) GetHead() types.Point {
	return s.body.At(s.head)
}

func (s *Snake) GetTail() types.Point {
	return s.body.At(s.tail)
}

func (s *Snake) HeadSlot() int {
	return s.head
}

func (s *Snake) TailSlot() int {
	return s.tail
}

func (s *Snake) Len() int {
	return s.length
}

// Full reports whether every ring slot is a live segment.
func (s *Snake) Full() bool {
	return s.length == s.body.Cap()
}

// Each calls fn for every segment from head to tail, stopping early when
// fn returns false.
func (s *Snake) Each(fn func(p types.Point) bool) {
	s.walk(s.head, fn)
}

// EachBehindHead is Each without the head segment.
func (s *Snake) EachBehindHead(fn func(p types.Point) bool) {
	if s.head == s.tail {
		return
	}
	s.walk(s.body.Next(s.head), fn)
}

func (s *Snake) walk(slot int, fn func(p types.Point) bool) {
	for {
		if !fn(s.body.At(slot)) {
			return
		}
		if slot == s.tail {
			return
		}
		slot = s.body.Next(slot)
	}
}

// Body returns a copy of the segments from head to tail.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, 0, s.length)
	s.Each(func(p types.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// SetDirection changes heading unless dir is the reverse of the current
// one. It reports whether the heading was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.NONE || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
