package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"ring-snake/game/entity"
	"ring-snake/game/manager"
	"ring-snake/game/ring"
	"ring-snake/game/types"
)

// Config is accepted once, when the game is built.
type Config struct {
	Width  int
	Height int
	// Seed for food and start positions.
	Seed   uint64
	Color  entity.Color
	Logger *zerolog.Logger
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Width > types.MaxGridSide || c.Height > types.MaxGridSide {
		return errors.Errorf("grid side must not exceed %d, got %dx%d", types.MaxGridSide, c.Width, c.Height)
	}
	if c.Width*c.Height < 2 {
		return errors.New("grid needs at least two cells to hold a snake and its food")
	}
	return nil
}

// Game owns one snake, its food and the crashed state. It is driven by a
// single caller, one Tick at a time.
type Game struct {
	UUID  string
	Steps int

	grid         types.Grid
	snake        *entity.Snake
	rng          *rand.Rand
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	log          zerolog.Logger
}

// New allocates the body ring, sized to the grid, and starts the first
// round.
func New(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	rng := rand.New(rand.NewSource(cfg.Seed))
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		grid:         grid,
		snake:        entity.NewSnake(ring.New[types.Point](grid.Cells()), grid, cfg.Color),
		rng:          rng,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng),
		stateMgr:     manager.NewStateManager(log),
		log:          log,
	}
	g.Restart()
	return g, nil
}

// Tick applies at most one intent and then advances the game one step.
// A restart while crashed replaces the step.
func (g *Game) Tick(intent types.Intent) {
	switch intent {
	case types.IntentUp, types.IntentDown, types.IntentLeft, types.IntentRight:
		if !g.Crashed() {
			g.snake.SetDirection(intent.Direction())
		}
	case types.IntentRestart:
		if g.Crashed() {
			g.Restart()
			return
		}
	case types.IntentNone, types.IntentQuit:
	default:
		panic(fmt.Sprintf("game: unknown intent %d", int(intent)))
	}
	g.MoveSnake()
}

// MoveSnake advances the snake one cell. Nothing changes once crashed.
func (g *Game) MoveSnake() {
	if g.Crashed() {
		return
	}
	if g.collisionMgr.WouldBeOutOfBounds(g.snake) {
		g.crash("wall")
		return
	}

	newHead := g.snake.GetHead().Add(g.snake.Direction)
	g.snake.Move(newHead)
	g.Steps++

	food, ok := g.foodMgr.Food()
	if ok && g.collisionMgr.IsFoodCollision(newHead, food) {
		g.stateMgr.UpdateScore(g.Score())
		g.log.Debug().Str("round", g.UUID).Int("len", g.snake.Len()).Msg("ate food")
		if !g.foodMgr.Respawn(g.snake) {
			g.crash("board filled")
			return
		}
	} else {
		g.snake.RemoveTail()
	}

	if g.collisionMgr.SnakeCollidesWithSnake(g.snake) {
		g.crash("self")
	}
}

// Restart begins a new round in place, reusing the body ring.
func (g *Game) Restart() {
	start := types.Point{
		X: g.rng.Intn(g.grid.Width),
		Y: g.rng.Intn(g.grid.Height),
	}
	dir := types.RIGHT
	if start.X > g.grid.Width/2 {
		dir = types.LEFT
	}
	g.snake.Reset(start, dir)
	g.foodMgr.Respawn(g.snake)
	g.stateMgr.Restart()

	g.UUID = uuid.New().String()
	g.Steps = 0
	food, _ := g.foodMgr.Food()
	g.log.Info().
		Str("round", g.UUID).
		Interface("head", start).
		Interface("food", food).
		Stringer("direction", dir).
		Msg("round started")
}

func (g *Game) crash(cause string) {
	g.stateMgr.Crash(cause)
	g.log.Info().
		Str("round", g.UUID).
		Str("cause", cause).
		Int("score", g.Score()).
		Int("steps", g.Steps).
		Msg("crashed")
}

func (g *Game) Crashed() bool {
	return g.stateMgr.Crashed()
}

// Body returns the segments from head to tail.
func (g *Game) Body() []types.Point {
	return g.snake.Body()
}

func (g *Game) Len() int {
	return g.snake.Len()
}

// Food returns the food cell. It is only meaningful while not crashed.
func (g *Game) Food() (types.Point, bool) {
	if g.Crashed() {
		return types.Point{}, false
	}
	return g.foodMgr.Food()
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Color() entity.Color {
	return g.snake.Color
}

// Score is the number of food blocks eaten this round.
func (g *Game) Score() int {
	return g.snake.Len() - 1
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

// GetDirection deduces the heading that moved the snake from b to a,
// where a is the segment nearer the head. The two segments must be
// orthogonal neighbours.
func GetDirection(a, b types.Point) types.Direction {
	switch {
	case a.Y == b.Y && a.X == b.X+1:
		return types.RIGHT
	case a.Y == b.Y && a.X == b.X-1:
		return types.LEFT
	case a.X == b.X && a.Y == b.Y+1:
		return types.DOWN
	case a.X == b.X && a.Y == b.Y-1:
		return types.UP
	default:
		panic(fmt.Sprintf("game: segments %v and %v are not adjacent", a, b))
	}
}
