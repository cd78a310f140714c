// Package geom provides pure, stateless functions over axis-aligned
// rectangles and segments. Everything here operates on plain float64
// scalars; the Box type is a thin convenience wrapper for callers that
// want a value to pass around.
//
// Coordinate convention: +x right, +y down (screen space). A box covers
// the half-open region [left, left+width) x [top, top+height) for grid
// membership purposes; see PointInBox for the tolerant interior test used
// elsewhere.
package geom

// Tolerance is the slack used by PointInBox to decide whether a point lies
// strictly inside a box. It is not used anywhere else: Liang-Barsky zero
// comparisons in SegmentVsBox are exact.
const Tolerance = 1e-5

// Box is an axis-aligned rectangle: Width and Height must both be > 0.
type Box struct {
	Left, Top, Width, Height float64
}

// Right returns Left+Width.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns Top+Height.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Extents returns left, top, right, bottom in one call.
func (b Box) Extents() (left, top, right, bottom float64) {
	return b.Left, b.Top, b.Right(), b.Bottom()
}

// NearestCorner returns the corner of box (l,t,w,h) nearest to (x,y): cx is
// whichever of {l, l+w} is closer to x, cy whichever of {t, t+h} is closer
// to y. Ties resolve to the second argument (l+w / t+h) — this must be
// preserved exactly, callers rely on it to break MTV ties consistently.
func NearestCorner(l, t, w, h, x, y float64) (cx, cy float64) {
	return nearest(x, l, l+w), nearest(y, t, t+h)
}

func nearest(v, a, b float64) float64 {
	if absf(v-a) < absf(v-b) {
		return a
	}
	return b
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// PointInBox reports whether (x,y) lies strictly inside box (l,t,w,h),
// tolerant by Tolerance. Boundary points are not contained: this asymmetry
// (tolerance applies here but nowhere else) exists so that grazing,
// touching-but-not-overlapping contacts are never classified as an
// intersection.
func PointInBox(l, t, w, h, x, y float64) bool {
	return x-l > Tolerance && y-t > Tolerance && l+w-x > Tolerance && t+h-y > Tolerance
}

// Overlap reports whether two boxes overlap, using strict inequalities and
// no tolerance. Touching-but-not-overlapping returns false.
func Overlap(l1, t1, w1, h1, l2, t2, w2, h2 float64) bool {
	return l1 < l2+w2 && l2 < l1+w1 && t1 < t2+h2 && t2 < t1+h1
}

// Minkowski returns the Minkowski difference of box1 and box2: the box
// whose interior contains the origin iff box1 overlaps box2, and such that
// a segment from the origin along box1's displacement intersects this box
// iff box1 sweeping that displacement intersects box2.
func Minkowski(l1, t1, w1, h1, l2, t2, w2, h2 float64) (l, t, w, h float64) {
	return l2 - l1 - w1, t2 - t1 - h1, w1 + w2, h1 + h2
}

// side indices into the per-side arrays used by SegmentVsBox: left, right,
// top, bottom.
const (
	sideLeft = iota
	sideRight
	sideTop
	sideBottom
)

// SegmentVsBox is the generalized Liang-Barsky segment-vs-AABB clip. It
// casts the segment (x1,y1)->(x2,y2) against box (l,t,w,h), starting from
// parameter interval [ti1,ti2], and returns the clipped entry/exit
// parameters plus the normals of the sides hit at entry and exit.
//
// Normals are only meaningful when the caller passes the unbounded
// interval (negative/positive infinity); a bounded interval can clip away
// the side that would have produced the reported normal.
func SegmentVsBox(l, t, w, h, x1, y1, x2, y2, ti1, ti2 float64) (hit bool, oti1, oti2, nx1, ny1, nx2, ny2 float64) {
	dx, dy := x2-x1, y2-y1

	// p, q per side in left(-x), right(+x), top(-y), bottom(+y) order.
	ps := [4]float64{-dx, dx, -dy, dy}
	qs := [4]float64{x1 - l, l + w - x1, y1 - t, t + h - y1}

	oti1, oti2 = ti1, ti2
	for side := 0; side < 4; side++ {
		p, q := ps[side], qs[side]
		if p == 0 {
			if q <= 0 {
				return false, 0, 0, 0, 0, 0, 0
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > oti2 {
				return false, 0, 0, 0, 0, 0, 0
			}
			if r > oti1 {
				oti1 = r
				nx1, ny1 = sideNormal(side)
			}
		} else {
			if r < oti1 {
				return false, 0, 0, 0, 0, 0, 0
			}
			if r < oti2 {
				oti2 = r
				nx2, ny2 = sideNormal(side)
			}
		}
	}
	if oti1 > oti2 {
		return false, 0, 0, 0, 0, 0, 0
	}
	return true, oti1, oti2, nx1, ny1, nx2, ny2
}

func sideNormal(side int) (nx, ny float64) {
	switch side {
	case sideLeft:
		return -1, 0
	case sideRight:
		return 1, 0
	case sideTop:
		return 0, -1
	case sideBottom:
		return 0, 1
	default:
		return 0, 0
	}
}
