// Package grid implements the uniform spatial hash that backs the engine's
// broad phase: a sparse two-level mapping from integer row/column cell
// coordinates to the set of items overlapping that cell.
//
// Cells are created lazily on first insertion and deleted once their last
// item leaves (a row left with no cells is deleted too), so the maps only
// ever hold occupied cells.
package grid

import (
	"math"

	"github.com/duskfall/swept2d/geom"
)

// cell holds the set of items overlapping one (cx, cy) grid square.
type cell[T comparable] struct {
	cx, cy int
	items  map[T]struct{}
}

func newCell[T comparable](cx, cy int) *cell[T] {
	return &cell[T]{cx: cx, cy: cy, items: make(map[T]struct{})}
}

// Grid is a sparse row -> column -> cell spatial hash over items of type
// T, keyed by integer cell coordinates derived from CellSize.
type Grid[T comparable] struct {
	CellSize float64
	rows     map[int]map[int]*cell[T]
}

// New builds an empty grid with the given (strictly positive) cell size.
func New[T comparable](cellSize float64) *Grid[T] {
	return &Grid[T]{CellSize: cellSize, rows: make(map[int]map[int]*cell[T])}
}

// toCell converts a world coordinate to a 1-based cell index: floor(x /
// cellSize) + 1, matching the original Lua implementation's indexing.
func (g *Grid[T]) toCell(v float64) int {
	return int(math.Floor(v/g.CellSize)) + 1
}

// CellRange returns the inclusive column/row range (cl, ct, cw, ch) that
// box (l,t,w,h) occupies: columns cl..cl+cw-1, rows ct..ct+ch-1.
func (g *Grid[T]) CellRange(l, t, w, h float64) (cl, ct, cw, ch int) {
	cl = g.toCell(l)
	ct = g.toCell(t)
	cr := int(math.Ceil((l + w) / g.CellSize))
	cb := int(math.Ceil((t + h) / g.CellSize))
	cw = cr - cl + 1
	ch = cb - ct + 1
	return cl, ct, cw, ch
}

func (g *Grid[T]) cellAt(cx, cy int, create bool) *cell[T] {
	row, ok := g.rows[cy]
	if !ok {
		if !create {
			return nil
		}
		row = make(map[int]*cell[T])
		g.rows[cy] = row
	}
	c, ok := row[cx]
	if !ok {
		if !create {
			return nil
		}
		c = newCell[T](cx, cy)
		row[cx] = c
	}
	return c
}

func (g *Grid[T]) pruneIfEmpty(c *cell[T]) {
	if len(c.items) > 0 {
		return
	}
	row, ok := g.rows[c.cy]
	if !ok {
		return
	}
	delete(row, c.cx)
	if len(row) == 0 {
		delete(g.rows, c.cy)
	}
}

// Insert adds item into every cell box (l,t,w,h) overlaps.
func (g *Grid[T]) Insert(item T, l, t, w, h float64) {
	cl, ct, cw, ch := g.CellRange(l, t, w, h)
	for cy := ct; cy < ct+ch; cy++ {
		for cx := cl; cx < cl+cw; cx++ {
			c := g.cellAt(cx, cy, true)
			c.items[item] = struct{}{}
		}
	}
}

// Remove deletes item from every cell box (l,t,w,h) overlaps, pruning any
// cell left empty.
func (g *Grid[T]) Remove(item T, l, t, w, h float64) {
	cl, ct, cw, ch := g.CellRange(l, t, w, h)
	for cy := ct; cy < ct+ch; cy++ {
		for cx := cl; cx < cl+cw; cx++ {
			c := g.cellAt(cx, cy, false)
			if c == nil {
				continue
			}
			delete(c.items, item)
			g.pruneIfEmpty(c)
		}
	}
}

// QueryRect returns the deduplicated union of items in every cell that the
// column/row range (cl,ct,cw,ch) touches.
func (g *Grid[T]) QueryRect(cl, ct, cw, ch int) []T {
	seen := make(map[T]struct{})
	var out []T
	for cy := ct; cy < ct+ch; cy++ {
		row, ok := g.rows[cy]
		if !ok {
			continue
		}
		for cx := cl; cx < cl+cw; cx++ {
			c, ok := row[cx]
			if !ok {
				continue
			}
			for item := range c.items {
				if _, dup := seen[item]; dup {
					continue
				}
				seen[item] = struct{}{}
				out = append(out, item)
			}
		}
	}
	return out
}

// QueryBox resolves a world-space rectangle to its cell range and returns
// the deduplicated union of items found there.
func (g *Grid[T]) QueryBox(l, t, w, h float64) []T {
	cl, ct, cw, ch := g.CellRange(l, t, w, h)
	return g.QueryRect(cl, ct, cw, ch)
}

// QueryPoint returns the items in the single cell containing (x,y).
func (g *Grid[T]) QueryPoint(x, y float64) []T {
	cx, cy := g.toCell(x), g.toCell(y)
	c := g.cellAt(cx, cy, false)
	if c == nil {
		return nil
	}
	out := make([]T, 0, len(c.items))
	for item := range c.items {
		out = append(out, item)
	}
	return out
}

// QuerySegmentCells enumerates every occupied cell coordinate pair whose
// interior the world-space segment (x1,y1)->(x2,y2) touches, in traversal
// order from start toward end, via a digital differential analyzer.
//
// When both axes' accumulated parameters tie exactly, both axes are
// advanced and the two diagonally-adjacent cells between the previous and
// next diagonal cell are emitted, preserving the order in which a
// perfectly diagonal ray would touch them. A safety bound of twice the
// Manhattan distance in cells terminates the loop in degenerate
// floating-point cases.
func (g *Grid[T]) QuerySegmentCells(x1, y1, x2, y2 float64) [][2]int {
	cx, cy := g.toCell(x1), g.toCell(y1)
	ex, ey := g.toCell(x2), g.toCell(y2)

	vx, vy := x2-x1, y2-y1

	stepX := stepOf(vx)
	stepY := stepOf(vy)

	var dx, dy float64
	if vx == 0 {
		dx = math.Inf(1)
	} else {
		dx = g.CellSize / math.Abs(vx)
	}
	if vy == 0 {
		dy = math.Inf(1)
	} else {
		dy = g.CellSize / math.Abs(vy)
	}

	tx := nextBoundaryParam(x1, vx, cx, g.CellSize)
	ty := nextBoundaryParam(y1, vy, cy, g.CellSize)

	cells := [][2]int{{cx, cy}}
	visited := map[[2]int]bool{{cx, cy}: true}

	maxSteps := 2 * (absInt(ex-cx) + absInt(ey-cy))
	for i := 0; i < maxSteps; i++ {
		if cx == ex && cy == ey {
			break
		}
		switch {
		case tx < ty:
			tx += dx
			cx += stepX
		case ty < tx:
			ty += dy
			cy += stepY
		default:
			// Perfectly diagonal step: advance both axes and emit the two
			// off-diagonal cells between the previous and next diagonal
			// cell, in the order a diagonal ray would touch them.
			nx, ny := cx+stepX, cy+stepY
			tx += dx
			ty += dy
			addCell(&cells, visited, nx, cy)
			addCell(&cells, visited, cx, ny)
			cx, cy = nx, ny
		}
		addCell(&cells, visited, cx, cy)
	}
	return cells
}

func addCell(cells *[][2]int, visited map[[2]int]bool, cx, cy int) {
	key := [2]int{cx, cy}
	if visited[key] {
		return
	}
	visited[key] = true
	*cells = append(*cells, key)
}

func stepOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// nextBoundaryParam computes the DDA parameter to the first cell boundary
// crossing along one axis, starting at world coordinate v0 inside cell c0,
// moving with signed velocity component vel.
func nextBoundaryParam(v0, vel float64, c0 int, cellSize float64) float64 {
	if vel == 0 {
		return math.Inf(1)
	}
	// c0 is 1-based: the cell spans [(c0-1)*cellSize, c0*cellSize).
	if vel > 0 {
		boundary := float64(c0) * cellSize
		return (boundary - v0) / vel
	}
	boundary := float64(c0-1) * cellSize
	return (boundary - v0) / vel
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BoxCellRange is a convenience wrapper over CellRange taking a geom.Box.
func (g *Grid[T]) BoxCellRange(b geom.Box) (cl, ct, cw, ch int) {
	return g.CellRange(b.Left, b.Top, b.Width, b.Height)
}
