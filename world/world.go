// Package world implements the top-level facade that owns the spatial
// grid and the authoritative item -> box mapping, coordinates
// add/remove/move/teleport, and runs the broad phase before invoking the
// collision resolver.
package world

import (
	"fmt"
	"math"
	"sort"

	"github.com/duskfall/swept2d/collision"
	"github.com/duskfall/swept2d/geom"
	"github.com/duskfall/swept2d/grid"
	"github.com/duskfall/swept2d/pool"
	"github.com/duskfall/swept2d/worlderr"
)

// DefaultCellSize is the default cell size; config.DefaultWorldConfig
// uses it. New itself always takes an explicit cell size.
const DefaultCellSize = 64

// Filter is a predicate on a candidate item; returning true excludes it
// from a Check/Move result.
type Filter[T comparable] func(other T) bool

// World owns every item's current box and the grid indexing it.
type World[T comparable] struct {
	cellSize float64
	boxes    map[T]geom.Box
	grid     *grid.Grid[T]

	// setPool hands out cleared map[T]struct{} scratch sets for the
	// per-call visited/seen bookkeeping in Check and segmentCandidates,
	// so repeated broad-phase queries don't allocate a fresh map each time.
	setPool *pool.Pool[map[T]struct{}]
}

// New builds a world with the given (strictly positive) cell size.
func New[T comparable](cellSize float64) (*World[T], error) {
	if cellSize <= 0 {
		return nil, worlderr.ErrInvalidCellSize
	}
	return &World[T]{
		cellSize: cellSize,
		boxes:    make(map[T]geom.Box),
		grid:     grid.New[T](cellSize),
		setPool: pool.New(
			func() map[T]struct{} { return make(map[T]struct{}) },
			func(m map[T]struct{}) { clear(m) },
		),
	}, nil
}

// CellSize returns the world's immutable cell size.
func (w *World[T]) CellSize() float64 { return w.cellSize }

// Add stores a new item's box and inserts it into the grid. It rejects
// duplicate items and non-positive dimensions.
func (w *World[T]) Add(item T, left, top, width, height float64) error {
	if _, exists := w.boxes[item]; exists {
		return fmt.Errorf("add %v: %w", item, worlderr.ErrDuplicateItem)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("add %v: %w", item, worlderr.ErrInvalidDimensions)
	}
	b := geom.Box{Left: left, Top: top, Width: width, Height: height}
	w.boxes[item] = b
	w.grid.Insert(item, b.Left, b.Top, b.Width, b.Height)
	return nil
}

// Remove deletes an item's box and its grid entries. It rejects unknown
// items.
func (w *World[T]) Remove(item T) error {
	b, ok := w.boxes[item]
	if !ok {
		return fmt.Errorf("remove %v: %w", item, worlderr.ErrUnknownItem)
	}
	w.grid.Remove(item, b.Left, b.Top, b.Width, b.Height)
	delete(w.boxes, item)
	return nil
}

// Teleport removes and re-adds item with a new box, allowing its
// dimensions to change. It is used internally by Move when the position
// actually changes, and is callable directly.
func (w *World[T]) Teleport(item T, left, top, width, height float64) error {
	if _, ok := w.boxes[item]; !ok {
		return fmt.Errorf("teleport %v: %w", item, worlderr.ErrUnknownItem)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("teleport %v: %w", item, worlderr.ErrInvalidDimensions)
	}
	if err := w.Remove(item); err != nil {
		return err
	}
	return w.Add(item, left, top, width, height)
}

// GetBox returns the four components of item's current box. It fails if
// item is unknown.
func (w *World[T]) GetBox(item T) (geom.Box, error) {
	b, ok := w.boxes[item]
	if !ok {
		return geom.Box{}, fmt.Errorf("getBox %v: %w", item, worlderr.ErrUnknownItem)
	}
	return b, nil
}

// Collision is the resolved descriptor returned by Check/Move: a thin,
// read-only view over collision.Collision exposing only what callers of
// World need (the resolver's richer internals stay in the collision
// package).
type Collision[T comparable] struct {
	Item, Other    T
	ItemBox        geom.Box
	OtherBox       geom.Box
	IsIntersection bool
	Ti             float64
	Nx, Ny         float64

	resolved *collision.Collision[T]
}

// Touch, Slide, Bounce delegate to the underlying resolved collision; see
// package collision for their semantics.
func (c *Collision[T]) Touch() (collision.Touch, error)   { return c.resolved.GetTouch() }
func (c *Collision[T]) Slide() (collision.Slide, error)   { return c.resolved.GetSlide() }
func (c *Collision[T]) Bounce() (collision.Bounce, error) { return c.resolved.GetBounce() }

// sweptBounds returns the bounding rectangle covering both a box and a
// candidate future top-left, used as the broad-phase query region.
func sweptBounds(b geom.Box, futureL, futureT float64) geom.Box {
	l := math.Min(b.Left, futureL)
	t := math.Min(b.Top, futureT)
	r := math.Max(b.Right(), futureL+b.Width)
	bo := math.Max(b.Bottom(), futureT+b.Height)
	return geom.Box{Left: l, Top: t, Width: r - l, Height: bo - t}
}

// Check runs the broad phase over the swept AABB covering item's current
// box and its future box, resolves every surviving candidate, and returns
// the hits sorted ascending by Ti (intersections, Ti < 0, sort before
// tunnelings, Ti in [0,1)). It does not move item.
func (w *World[T]) Check(item T, futureL, futureT float64, ignore []T, filter Filter[T]) ([]*Collision[T], error) {
	itemBox, ok := w.boxes[item]
	if !ok {
		return nil, fmt.Errorf("check %v: %w", item, worlderr.ErrUnknownItem)
	}

	ignoreSet := make(map[T]struct{}, len(ignore))
	for _, it := range ignore {
		ignoreSet[it] = struct{}{}
	}

	sweep := sweptBounds(itemBox, futureL, futureT)
	candidates := w.grid.QueryBox(sweep.Left, sweep.Top, sweep.Width, sweep.Height)

	visited := w.setPool.Get()
	defer w.setPool.Put(visited)
	var out []*Collision[T]
	for _, other := range candidates {
		if other == item {
			continue
		}
		if _, skip := visited[other]; skip {
			continue
		}
		visited[other] = struct{}{}
		if _, skip := ignoreSet[other]; skip {
			continue
		}
		if filter != nil && filter(other) {
			continue
		}
		otherBox, ok := w.boxes[other]
		if !ok {
			continue
		}
		resolved := collision.New(item, other, itemBox, otherBox, futureL, futureT)
		if !resolved.Resolve() {
			continue
		}
		out = append(out, &Collision[T]{
			Item:           item,
			Other:          other,
			ItemBox:        itemBox,
			OtherBox:       otherBox,
			IsIntersection: resolved.IsIntersection,
			Ti:             resolved.Ti,
			Nx:             resolved.Nx,
			Ny:             resolved.Ny,
			resolved:       resolved,
		})
	}

	sortCollisions(out, itemBox)
	return out, nil
}

// sortCollisions orders ascending by Ti; when two candidates tie on Ti,
// the one whose other-box center is nearer the moving item's current
// center sorts first (a documented secondary key, since strict Ti
// ordering alone does not pin down tie order).
func sortCollisions[T comparable](cols []*Collision[T], itemBox geom.Box) {
	icx := itemBox.Left + itemBox.Width/2
	icy := itemBox.Top + itemBox.Height/2
	dist := func(b geom.Box) float64 {
		ocx := b.Left + b.Width/2
		ocy := b.Top + b.Height/2
		dx, dy := ocx-icx, ocy-icy
		return dx*dx + dy*dy
	}
	sort.SliceStable(cols, func(i, j int) bool {
		if cols[i].Ti != cols[j].Ti {
			return cols[i].Ti < cols[j].Ti
		}
		return dist(cols[i].OtherBox) < dist(cols[j].OtherBox)
	})
}

// Move runs Check, then unconditionally relocates item to (newL, newT) in
// the grid, regardless of whether any collisions were detected. It returns
// the sorted collision list; the caller decides how to interpret it (e.g.
// re-deriving a corrected position via Collision.Slide and calling Move
// again).
func (w *World[T]) Move(item T, newL, newT float64, ignore []T, filter Filter[T]) ([]*Collision[T], error) {
	cols, err := w.Check(item, newL, newT, ignore, filter)
	if err != nil {
		return nil, err
	}
	b := w.boxes[item]
	if b.Left != newL || b.Top != newT {
		if err := w.Teleport(item, newL, newT, b.Width, b.Height); err != nil {
			return nil, err
		}
	}
	return cols, nil
}

// QueryBox returns every item whose box overlaps rectangle (l,t,w,h),
// using precise rect-rect overlap to filter the grid's broad-phase
// candidates. Order is unspecified.
func (w *World[T]) QueryBox(l, t, w2, h float64) []T {
	candidates := w.grid.QueryBox(l, t, w2, h)
	var out []T
	for _, item := range candidates {
		b := w.boxes[item]
		if geom.Overlap(b.Left, b.Top, b.Width, b.Height, l, t, w2, h) {
			out = append(out, item)
		}
	}
	return out
}

// QueryPoint returns every item whose box strictly (tolerantly) contains
// (x,y).
func (w *World[T]) QueryPoint(x, y float64) []T {
	candidates := w.grid.QueryPoint(x, y)
	var out []T
	for _, item := range candidates {
		b := w.boxes[item]
		if geom.PointInBox(b.Left, b.Top, b.Width, b.Height, x, y) {
			out = append(out, item)
		}
	}
	return out
}

// segmentHit is the per-item result of a bounded Liang-Barsky cast used by
// both QuerySegment and QuerySegmentWithCoords.
type segmentHit[T comparable] struct {
	item       T
	ti1, ti2   float64
	sortWeight float64
}

func (w *World[T]) segmentCandidates(x1, y1, x2, y2 float64) []segmentHit[T] {
	cells := w.grid.QuerySegmentCells(x1, y1, x2, y2)
	seen := w.setPool.Get()
	defer w.setPool.Put(seen)
	var hits []segmentHit[T]

	// Collect candidates from every touched cell, deduplicated.
	candSeen := w.setPool.Get()
	defer w.setPool.Put(candSeen)
	var candidates []T
	for _, rc := range cells {
		cx, cy := rc[0], rc[1]
		items := w.itemsInCell(cx, cy)
		for _, item := range items {
			if _, ok := candSeen[item]; ok {
				continue
			}
			candSeen[item] = struct{}{}
			candidates = append(candidates, item)
		}
	}

	for _, item := range candidates {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		b := w.boxes[item]
		hit, ti1, ti2, _, _, _, _ := geom.SegmentVsBox(b.Left, b.Top, b.Width, b.Height, x1, y1, x2, y2, 0, 1)
		if !hit {
			continue
		}
		if !((ti1 > 0 && ti1 < 1) || (ti2 > 0 && ti2 < 1)) {
			continue
		}
		_, uti1, _, _, _, _, _ := geom.SegmentVsBox(b.Left, b.Top, b.Width, b.Height, x1, y1, x2, y2, math.Inf(-1), math.Inf(1))
		hits = append(hits, segmentHit[T]{item: item, ti1: ti1, ti2: ti2, sortWeight: uti1})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].sortWeight < hits[j].sortWeight })
	return hits
}

// itemsInCell is a thin seam over the grid's per-cell item set, used by
// segment queries which need per-cell rather than per-rect access.
func (w *World[T]) itemsInCell(cx, cy int) []T {
	return w.grid.QueryRect(cx, cy, 1, 1)
}

// QuerySegment returns items the directed segment (x1,y1)->(x2,y2)
// crosses, in traversal order.
func (w *World[T]) QuerySegment(x1, y1, x2, y2 float64) []T {
	hits := w.segmentCandidates(x1, y1, x2, y2)
	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

// SegmentHit is one entry of QuerySegmentWithCoords: the item, its clipped
// entry/exit parameters, and the corresponding world-space points.
type SegmentHit[T comparable] struct {
	Item           T
	Ti1, Ti2       float64
	EntryX, EntryY float64
	ExitX, ExitY   float64
}

// QuerySegmentWithCoords is QuerySegment plus, for each hit, the clipped
// parameters and world-space entry/exit points.
func (w *World[T]) QuerySegmentWithCoords(x1, y1, x2, y2 float64) []SegmentHit[T] {
	hits := w.segmentCandidates(x1, y1, x2, y2)
	dx, dy := x2-x1, y2-y1
	out := make([]SegmentHit[T], len(hits))
	for i, h := range hits {
		out[i] = SegmentHit[T]{
			Item:   h.item,
			Ti1:    h.ti1,
			Ti2:    h.ti2,
			EntryX: x1 + dx*h.ti1,
			EntryY: y1 + dy*h.ti1,
			ExitX:  x1 + dx*h.ti2,
			ExitY:  y1 + dy*h.ti2,
		}
	}
	return out
}
