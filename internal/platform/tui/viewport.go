package tui

import (
	"math"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Viewport maps the logical canvas onto a block of terminal cells.
type Viewport struct {
	X, Y       int // Top-left cell of the playfield
	Cols, Rows int // Playfield size in cells
}

// FitViewport returns the largest playfield with the canvas aspect ratio
// that fits in width x height cells, centered.
func FitViewport(width, height int) Viewport {
	if width <= 0 || height <= 0 {
		return Viewport{}
	}

	rows := height
	cols := int(math.Round(float64(rows) * flappy.CanvasW * cellAspect / flappy.CanvasH))
	if cols > width {
		cols = width
		rows = int(math.Round(float64(cols) * flappy.CanvasH / (flappy.CanvasW * cellAspect)))
		rows = core.Clamp(rows, 1, height)
	}
	cols = max(cols, 1)

	return Viewport{
		X:    (width - cols) / 2,
		Y:    (height - rows) / 2,
		Cols: cols,
		Rows: rows,
	}
}

// Bounds returns the playfield in cell coordinates.
func (v Viewport) Bounds() core.Rect {
	return core.NewRect(v.X, v.Y, v.Cols, v.Rows)
}

// CellX projects a logical x onto a column.
func (v Viewport) CellX(x int) int {
	return v.X + core.FloorDiv(x*v.Cols, flappy.CanvasW)
}

// CellY projects a logical y onto a row.
func (v Viewport) CellY(y int) int {
	return v.Y + core.FloorDiv(y*v.Rows, flappy.CanvasH)
}

// CellRect projects a logical rect onto the cells it touches.
// Every non-empty rect covers at least one cell.
func (v Viewport) CellRect(r core.Rect) core.Rect {
	x0, y0 := v.CellX(r.X), v.CellY(r.Y)
	x1 := v.X + ceilDiv(r.Right()*v.Cols, flappy.CanvasW)
	y1 := v.Y + ceilDiv(r.Bottom()*v.Rows, flappy.CanvasH)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Logical returns the canvas point under the center of cell (cx, cy).
// ok is false for cells outside the playfield.
func (v Viewport) Logical(cx, cy int) (p core.Point, ok bool) {
	if v.Cols == 0 || v.Rows == 0 || !v.Bounds().Contains(cx, cy) {
		return core.Point{}, false
	}
	p.X = (2*(cx-v.X) + 1) * flappy.CanvasW / (2 * v.Cols)
	p.Y = (2*(cy-v.Y) + 1) * flappy.CanvasH / (2 * v.Rows)
	return p, true
}

// clip returns the part of r inside bounds. The result may be empty.
func clip(r, bounds core.Rect) core.Rect {
	x0, y0 := max(r.X, bounds.X), max(r.Y, bounds.Y)
	x1, y1 := min(r.Right(), bounds.Right()), min(r.Bottom(), bounds.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 0), max(y1-y0, 0))
}

func ceilDiv(a, b int) int {
	return -core.FloorDiv(-a, b)
}
