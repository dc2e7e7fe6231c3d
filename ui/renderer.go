package ui

import (
	"fmt"
	"image/color"

	"snake-canvas/game/entity"
	"snake-canvas/game/manager"
	"snake-canvas/game/types"
)

// DefaultCellSize is the edge of one grid cell in canvas pixels
const DefaultCellSize = 20

// Text sizes
const (
	titleSize = 30
	hintSize  = 16
	scoreSize = 20
)

// View is the read-only game state a frame is drawn from
type View interface {
	State() manager.State
	Score() int
	Record() int
	Snake() *entity.Snake
	Food() *entity.Food
}

type Renderer struct {
	cellSize int
}

func NewRenderer(cellSize int) *Renderer {
	if cellSize < 3 {
		cellSize = DefaultCellSize
	}
	return &Renderer{cellSize: cellSize}
}

func (r *Renderer) CellSize() int {
	return r.cellSize
}

// CanvasSize returns the pixel size of a canvas that fits grid exactly
func (r *Renderer) CanvasSize(grid types.Grid) (int, int) {
	return grid.Width * r.cellSize, grid.Height * r.cellSize
}

// Draw paints one frame of w. It only reads the world.
func (r *Renderer) Draw(s Surface, w View) {
	width, height := s.Size()
	s.ClearRect(0, 0, width, height, ColorBackground)

	switch w.State() {
	case manager.StateMenu:
		s.Text("SNAKE GAME", width/2, 60, titleSize, AlignCenter, ColorText)
		s.Text("Press SPACE to play", width/2, 200, hintSize, AlignCenter, ColorText)

	case manager.StatePlaying, manager.StatePaused:
		s.Text(fmt.Sprint(w.Score()), 20, 20, scoreSize, AlignLeft, ColorText)
		r.drawFood(s, w)
		r.drawSnake(s, w)

	case manager.StateGameOver:
		s.Text("GAME OVER", width/2, 60, titleSize, AlignCenter, ColorText)
		s.Text(fmt.Sprintf("Score: %d", w.Score()), width/2, 125, hintSize, AlignCenter, ColorText)
		s.Text(fmt.Sprintf("Record: %d", w.Record()), width/2, 145, hintSize, AlignCenter, ColorText)
		s.Text("Press SPACE to play again", width/2, 200, hintSize, AlignCenter, ColorText)
	}
}

func (r *Renderer) drawSnake(s Surface, w View) {
	snake := w.Snake()
	for i, p := range snake.Body {
		c := ColorBodyEven
		if i%2 != 0 {
			c = ColorBodyOdd
		}
		r.fillCell(s, p, c)
	}
	r.fillCell(s, snake.Head, ColorHead)
}

func (r *Renderer) drawFood(s Surface, w View) {
	food := w.Food()
	if !food.Placed {
		return
	}
	r.fillCell(s, food.Pos, ColorFood)
}

// fillCell paints a cell inset by one pixel on every side, leaving a grid gap
func (r *Renderer) fillCell(s Surface, p types.Point, c color.RGBA) {
	s.FillRect(p.X*r.cellSize+1, p.Y*r.cellSize+1, r.cellSize-2, r.cellSize-2, c)
}
