package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ring-snake/game"
	"ring-snake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	linkInset     = 1  // Gap left around each drawn link
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// WindowSize returns the window size that fits grid at cellSize pixels per
// cell.
func WindowSize(grid types.Grid, cellSize int32) (int32, int32) {
	return int32(grid.Width)*cellSize + borderPadding*2, int32(grid.Height)*cellSize + borderPadding*2
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	grid := g.Grid()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Fit the grid into the window, keeping cells square.
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	r.drawSnake(g)
	if food, ok := g.Food(); ok {
		rl.DrawRectangle(
			r.offsetX+int32(food.X)*r.cellSize,
			r.offsetY+int32(food.Y)*r.cellSize,
			r.cellSize, r.cellSize, rl.Red)
	}

	fontSize := max(r.cellSize, 10)
	rl.DrawText(fmt.Sprintf("%d / %d", g.Score(), g.HighScore()), r.offsetX+2, r.offsetY+2, fontSize, rl.Gray)
	if g.Crashed() {
		text := "Crashed! Press any key"
		textWidth := rl.MeasureText(text, fontSize)
		rl.DrawText(text,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			r.offsetY+(r.totalGridHeight-fontSize)/2,
			fontSize, rl.White)
	}

	rl.EndDrawing()
}

// drawSnake draws two segments at a time so the link between them is
// filled too, then the tail block on its own.
func (r *Renderer) drawSnake(g *game.Game) {
	c := g.Color()
	color := rl.Color{R: c.R, G: c.G, B: c.B, A: 255}

	body := g.Body()
	for i := 0; i+1 < len(body); i++ {
		x, y, w, h := linkRect(body[i], body[i+1], r.cellSize)
		rl.DrawRectangle(r.offsetX+x, r.offsetY+y, w, h, color)
	}
	x, y, w, h := cellRect(body[len(body)-1], r.cellSize)
	rl.DrawRectangle(r.offsetX+x, r.offsetY+y, w, h, color)
}

// linkRect returns the inset rectangle covering cur and next, which must
// be adjacent segments with cur nearer the head.
func linkRect(cur, next types.Point, cellSize int32) (x, y, w, h int32) {
	dir := game.GetDirection(cur, next)
	// The rectangle starts at whichever cell is further up or left.
	origin := cur
	if dir == types.RIGHT || dir == types.DOWN {
		origin = next
	}
	x = int32(origin.X) * cellSize
	y = int32(origin.Y) * cellSize
	switch dir {
	case types.LEFT, types.RIGHT:
		w, h = cellSize*2, cellSize
	default:
		w, h = cellSize, cellSize*2
	}
	return x + linkInset, y + linkInset, w - 2*linkInset, h - 2*linkInset
}

func cellRect(p types.Point, cellSize int32) (x, y, w, h int32) {
	return int32(p.X)*cellSize + linkInset, int32(p.Y)*cellSize + linkInset, cellSize - 2*linkInset, cellSize - 2*linkInset
}
