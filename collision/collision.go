// Package collision implements the narrow-phase swept-AABB resolver: given
// a moving item's box, its attempted displacement, and a stationary other
// box, it classifies the encounter (already intersecting vs. tunneling)
// and exposes derived touch/slide/bounce response helpers.
//
// A Collision is a plain value, not an object with behavior baked in: the
// response helpers (GetTouch/GetSlide/GetBounce) are pure functions of the
// resolved fields.
package collision

import (
	"math"

	"github.com/duskfall/swept2d/geom"
	"github.com/duskfall/swept2d/worlderr"
)

// Collision binds one moving item against one stationary other, the
// attempted displacement, and — once Resolve has run — the contact
// geometry.
type Collision[T comparable] struct {
	Item, Other T
	ItemBox     geom.Box
	OtherBox    geom.Box

	// FutureL, FutureT is the target top-left of Item.
	FutureL, FutureT float64
	Vx, Vy           float64

	resolved       bool
	IsIntersection bool
	Ti             float64
	Nx, Ny         float64

	// minkowski box, cached for the derived-response helpers.
	ml, mt, mw, mh float64
}

// New builds a Collision descriptor for item moving from itemBox toward
// (futureL, futureT) against stationary otherBox. Resolve must be called
// before GetTouch/GetSlide/GetBounce.
func New[T comparable](item, other T, itemBox, otherBox geom.Box, futureL, futureT float64) *Collision[T] {
	return &Collision[T]{
		Item:     item,
		Other:    other,
		ItemBox:  itemBox,
		OtherBox: otherBox,
		FutureL:  futureL,
		FutureT:  futureT,
		Vx:       futureL - itemBox.Left,
		Vy:       futureT - itemBox.Top,
	}
}

// Resolve classifies the collision. It returns false if there is no
// collision at all (the swept box never reaches the other box), in which
// case the descriptor's fields beyond Item/Other/boxes/displacement are
// left zeroed and GetTouch/GetSlide/GetBounce must not be called.
func (c *Collision[T]) Resolve() bool {
	ml, mt, mw, mh := geom.Minkowski(
		c.ItemBox.Left, c.ItemBox.Top, c.ItemBox.Width, c.ItemBox.Height,
		c.OtherBox.Left, c.OtherBox.Top, c.OtherBox.Width, c.OtherBox.Height,
	)
	c.ml, c.mt, c.mw, c.mh = ml, mt, mw, mh

	if geom.PointInBox(ml, mt, mw, mh, 0, 0) {
		// Case A: already intersecting at t=0. Use the minimum translation
		// vector rather than a time of impact.
		px, py := geom.NearestCorner(ml, mt, mw, mh, 0, 0)
		wi := math.Min(c.ItemBox.Width, math.Abs(px))
		hi := math.Min(c.ItemBox.Height, math.Abs(py))
		c.IsIntersection = true
		c.Ti = -(wi * hi)
		c.Nx, c.Ny = 0, 0
		c.resolved = true
		return true
	}

	// Case B: tunneling. Cast (0,0)->(Vx,Vy) against the Minkowski box with
	// the unbounded interval so normals come out correctly.
	hit, ti1, ti2, nx1, ny1, _, _ := geom.SegmentVsBox(ml, mt, mw, mh, 0, 0, c.Vx, c.Vy, math.Inf(-1), math.Inf(1))
	if !hit {
		return false
	}
	if ti1 < 1 && (ti1 > 0 || (ti1 == 0 && ti2 > 0)) {
		c.IsIntersection = false
		c.Ti = ti1
		c.Nx, c.Ny = nx1, ny1
		c.resolved = true
		return true
	}
	return false
}

// Touch is the contact geometry: the position at which the moving box
// first touches the other, plus the contact normal.
type Touch struct {
	X, Y   float64
	Nx, Ny float64
}

// GetTouch computes the first-touch position and normal. It returns
// worlderr.ErrNotResolved if Resolve has not yet been called.
func (c *Collision[T]) GetTouch() (Touch, error) {
	if !c.resolved {
		return Touch{}, worlderr.ErrNotResolved
	}

	if !c.IsIntersection {
		return Touch{
			X:  c.ItemBox.Left + c.Vx*c.Ti,
			Y:  c.ItemBox.Top + c.Vy*c.Ti,
			Nx: c.Nx,
			Ny: c.Ny,
		}, nil
	}

	if c.Vx == 0 && c.Vy == 0 {
		// Intersecting, stationary: minimum translation vector. The axis
		// with the smaller overlap wins; a perfect tie goes to the y-axis
		// via the strict "<" below.
		px, py := geom.NearestCorner(c.ml, c.mt, c.mw, c.mh, 0, 0)
		if absf(px) < absf(py) {
			return Touch{
				X:  c.ItemBox.Left + px,
				Y:  c.ItemBox.Top,
				Nx: signf(px),
				Ny: 0,
			}, nil
		}
		return Touch{
			X:  c.ItemBox.Left,
			Y:  c.ItemBox.Top + py,
			Nx: 0,
			Ny: signf(py),
		}, nil
	}

	// Intersecting, moving: find the last moment before now the boxes were
	// not overlapping by casting in reverse time, interval [-Inf, 1], and
	// reading the exit normal.
	hit, _, ti2, _, _, nx2, ny2 := geom.SegmentVsBox(c.ml, c.mt, c.mw, c.mh, 0, 0, c.Vx, c.Vy, math.Inf(-1), 1)
	if !hit {
		// Degenerate: treat as already at rest on the nearest corner.
		px, py := geom.NearestCorner(c.ml, c.mt, c.mw, c.mh, 0, 0)
		return Touch{X: c.ItemBox.Left + px, Y: c.ItemBox.Top + py}, nil
	}
	return Touch{
		X:  c.ItemBox.Left + c.Vx*ti2,
		Y:  c.ItemBox.Top + c.Vy*ti2,
		Nx: nx2,
		Ny: ny2,
	}, nil
}

// Slide is touch geometry plus the sliding position: the component of the
// target position perpendicular to the contact normal is restored.
type Slide struct {
	Touch
	X, Y float64
}

// GetSlide computes the touch point and the slide-corrected position.
func (c *Collision[T]) GetSlide() (Slide, error) {
	touch, err := c.GetTouch()
	if err != nil {
		return Slide{}, err
	}
	sx, sy := touch.X, touch.Y
	if c.Vx == 0 && c.Vy == 0 {
		return Slide{Touch: touch, X: sx, Y: sy}, nil
	}
	switch {
	case touch.Nx != 0:
		sy = c.FutureT
	case touch.Ny != 0:
		sx = c.FutureL
	}
	return Slide{Touch: touch, X: sx, Y: sy}, nil
}

// Bounce is touch geometry plus the bounce position: the remaining
// displacement (future - touch) reflected across the contact normal axis.
type Bounce struct {
	Touch
	X, Y float64
}

// GetBounce computes the touch point and the bounce-reflected position.
func (c *Collision[T]) GetBounce() (Bounce, error) {
	touch, err := c.GetTouch()
	if err != nil {
		return Bounce{}, err
	}
	if c.Vx == 0 && c.Vy == 0 {
		return Bounce{Touch: touch, X: touch.X, Y: touch.Y}, nil
	}
	remX, remY := c.FutureL-touch.X, c.FutureT-touch.Y
	if touch.Nx != 0 {
		remX = -remX
	}
	if touch.Ny != 0 {
		remY = -remY
	}
	return Bounce{Touch: touch, X: touch.X + remX, Y: touch.Y + remY}, nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func signf(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
