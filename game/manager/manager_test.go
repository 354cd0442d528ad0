package manager

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"ring-snake/game/entity"
	"ring-snake/game/ring"
	"ring-snake/game/types"
)

// buildSnake lays out body head first on a fresh snake.
func buildSnake(t *testing.T, grid types.Grid, body ...types.Point) *entity.Snake {
	t.Helper()
	require.NotEmpty(t, body)
	s := entity.NewSnake(ring.New[types.Point](grid.Cells()), grid, entity.Color{})
	s.Reset(body[len(body)-1], types.RIGHT)
	for i := len(body) - 2; i >= 0; i-- {
		s.Move(body[i])
	}
	require.Equal(t, body, s.Body())
	return s
}

func TestWouldBeOutOfBounds(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 3}
	cm := NewCollisionManager(grid)
	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
		want bool
	}{
		{"top edge up", types.Point{X: 1, Y: 0}, types.UP, true},
		{"top edge right", types.Point{X: 1, Y: 0}, types.RIGHT, false},
		{"bottom edge down", types.Point{X: 1, Y: 2}, types.DOWN, true},
		{"left edge left", types.Point{X: 0, Y: 1}, types.LEFT, true},
		{"right edge right", types.Point{X: 3, Y: 1}, types.RIGHT, true},
		{"right edge left", types.Point{X: 3, Y: 1}, types.LEFT, false},
		{"middle", types.Point{X: 2, Y: 1}, types.DOWN, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildSnake(t, grid, tt.head)
			s.Direction = tt.dir
			assert.Equal(t, tt.want, cm.WouldBeOutOfBounds(s))
		})
	}
}

func TestSnakeCollidesWithSnake(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	cm := NewCollisionManager(grid)

	single := buildSnake(t, grid, types.Point{X: 2, Y: 2})
	assert.False(t, cm.SnakeCollidesWithSnake(single))

	straight := buildSnake(t, grid, types.Point{X: 3, Y: 2}, types.Point{X: 2, Y: 2}, types.Point{X: 1, Y: 2})
	assert.False(t, cm.SnakeCollidesWithSnake(straight))

	// Head doubled back onto its own tail segment.
	looped := buildSnake(t, grid,
		types.Point{X: 1, Y: 1},
		types.Point{X: 1, Y: 2},
		types.Point{X: 2, Y: 2},
		types.Point{X: 2, Y: 1},
		types.Point{X: 1, Y: 1},
	)
	assert.True(t, cm.SnakeCollidesWithSnake(looped))
}

func TestSnakeCollisionIgnoresReleasedSlots(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	cm := NewCollisionManager(grid)
	s := buildSnake(t, grid, types.Point{X: 2, Y: 1}, types.Point{X: 2, Y: 2}, types.Point{X: 1, Y: 2})
	// Release (1,2), then step the head onto it: the stale slot must not count.
	s.RemoveTail()
	s.Move(types.Point{X: 1, Y: 1})
	s.RemoveTail()
	s.Move(types.Point{X: 1, Y: 2})
	assert.Equal(t, []types.Point{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}}, s.Body())
	assert.False(t, cm.SnakeCollidesWithSnake(s))
}

func TestFoodCollidesWithSnake(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	cm := NewCollisionManager(grid)
	s := buildSnake(t, grid, types.Point{X: 1, Y: 1}, types.Point{X: 1, Y: 2})
	assert.True(t, cm.FoodCollidesWithSnake(types.Point{X: 1, Y: 1}, s))
	assert.True(t, cm.FoodCollidesWithSnake(types.Point{X: 1, Y: 2}, s))
	assert.False(t, cm.FoodCollidesWithSnake(types.Point{X: 1, Y: 0}, s))
	assert.True(t, cm.IsFoodCollision(types.Point{X: 3, Y: 3}, types.Point{X: 3, Y: 3}))
}

func TestRespawnAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 2}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(7)))
	s := buildSnake(t, grid,
		types.Point{X: 0, Y: 0},
		types.Point{X: 1, Y: 0},
		types.Point{X: 2, Y: 0},
		types.Point{X: 2, Y: 1},
		types.Point{X: 1, Y: 1},
	)
	for i := 0; i < 50; i++ {
		require.True(t, fm.Respawn(s))
		food, ok := fm.Food()
		require.True(t, ok)
		assert.Equal(t, types.Point{X: 0, Y: 1}, food)
	}
}

func TestRespawnStaysOnGrid(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 4}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(1)))
	s := buildSnake(t, grid, types.Point{X: 3, Y: 3})
	for i := 0; i < 200; i++ {
		food := fm.GenerateFood(s)
		assert.True(t, grid.Contains(food))
		assert.NotEqual(t, types.Point{X: 3, Y: 3}, food)
	}
}

func TestRespawnOnFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(1)))
	s := buildSnake(t, grid, types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 0})
	assert.False(t, fm.Respawn(s))
	_, ok := fm.Food()
	assert.False(t, ok)
}

func TestStateManagerLifecycle(t *testing.T) {
	sm := NewStateManager(zerolog.Nop())
	assert.Equal(t, StatePlaying, sm.Current())
	assert.False(t, sm.Crashed())

	// Restarting a live round does nothing.
	sm.Restart()
	assert.Equal(t, StatePlaying, sm.Current())

	sm.Crash("wall")
	assert.True(t, sm.Crashed())
	assert.Panics(t, func() { sm.Crash("self") })

	sm.Restart()
	assert.False(t, sm.Crashed())
}

func TestHighScore(t *testing.T) {
	sm := NewStateManager(zerolog.Nop())
	sm.UpdateScore(3)
	sm.UpdateScore(1)
	assert.Equal(t, 3, sm.GetHighScore())
}
