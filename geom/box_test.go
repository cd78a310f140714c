package geom

import (
	"math"
	"testing"
)

func TestNearestCorner(t *testing.T) {
	tests := []struct {
		name       string
		l, t, w, h float64
		x, y       float64
		wantX      float64
		wantY      float64
	}{
		{"clearly left/top", 0, 0, 10, 10, -5, -5, 0, 0},
		{"clearly right/bottom", 0, 0, 10, 10, 50, 50, 10, 10},
		{"tie on x goes to l+w", 0, 0, 10, 10, 5, -5, 10, 0},
		{"tie on y goes to t+h", 0, 0, 10, 10, -5, 5, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := NearestCorner(tt.l, tt.t, tt.w, tt.h, tt.x, tt.y)
			if cx != tt.wantX || cy != tt.wantY {
				t.Errorf("NearestCorner() = (%v, %v), want (%v, %v)", cx, cy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointInBox(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"interior", 5, 5, true},
		{"on left edge", 0, 5, false},
		{"on right edge", 10, 5, false},
		{"outside", 20, 20, false},
		{"just inside tolerance", 0 + Tolerance*2, 5, true},
		{"within tolerance of edge", 0 + Tolerance/2, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointInBox(0, 0, 10, 10, tt.x, tt.y)
			if got != tt.want {
				t.Errorf("PointInBox(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name           string
		l1, t1, w1, h1 float64
		l2, t2, w2, h2 float64
		want           bool
	}{
		{"overlapping", 0, 0, 10, 10, 5, 5, 10, 10, true},
		{"touching edge, not overlapping", 0, 0, 10, 10, 10, 0, 10, 10, false},
		{"separate", 0, 0, 10, 10, 100, 100, 10, 10, false},
		{"contained", 0, 0, 10, 10, 2, 2, 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlap(tt.l1, tt.t1, tt.w1, tt.h1, tt.l2, tt.t2, tt.w2, tt.h2)
			if got != tt.want {
				t.Errorf("Overlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinkowskiMatchesOverlap(t *testing.T) {
	boxes := [][8]float64{
		{0, 0, 10, 10, 5, 5, 10, 10},
		{0, 0, 10, 10, 10, 0, 10, 10},
		{0, 0, 10, 10, 100, 100, 10, 10},
		{1, 0, 2, 1, 5, 0, 4, 1},
	}
	for _, b := range boxes {
		l1, t1, w1, h1, l2, t2, w2, h2 := b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7]
		ml, mt, mw, mh := Minkowski(l1, t1, w1, h1, l2, t2, w2, h2)
		gotOverlap := PointInBox(ml, mt, mw, mh, 0, 0)
		wantOverlap := Overlap(l1, t1, w1, h1, l2, t2, w2, h2)
		if gotOverlap != wantOverlap {
			t.Errorf("Minkowski/PointInBox disagree with Overlap for %v: got %v want %v", b, gotOverlap, wantOverlap)
		}
	}
}

func TestSegmentVsBox(t *testing.T) {
	t.Run("tunneling along x reports entry normal", func(t *testing.T) {
		// The Minkowski difference for A at (1,0,2,1), B at (5,0,4,1),
		// with B moving toward (15,0).
		ml, mt, mw, mh := Minkowski(5, 0, 4, 1, 1, 0, 2, 1)
		hit, ti1, _, nx1, ny1, _, _ := SegmentVsBox(ml, mt, mw, mh, 0, 0, 10, 0, math.Inf(-1), math.Inf(1))
		if !hit {
			t.Fatal("expected a hit")
		}
		if math.Abs(ti1-0.2) > 1e-9 {
			t.Errorf("ti1 = %v, want ~0.2", ti1)
		}
		if nx1 != 1 || ny1 != 0 {
			t.Errorf("normal = (%v, %v), want (1, 0)", nx1, ny1)
		}
	})

	t.Run("parallel segment outside never approaches", func(t *testing.T) {
		hit, _, _, _, _, _, _ := SegmentVsBox(0, 0, 10, 10, -5, 20, 5, 20, 0, 1)
		if hit {
			t.Error("expected no intersection for a parallel segment outside the box")
		}
	})

	t.Run("never reports ti >= 1", func(t *testing.T) {
		hit, ti1, _, _, _, _, _ := SegmentVsBox(0, 0, 10, 10, -100, 5, -50, 5, 0, 1)
		if hit && ti1 >= 1 {
			t.Errorf("ti1 = %v, should never be >= 1 when reported as a hit within [0,1]", ti1)
		}
	})
}

func TestBoxExtents(t *testing.T) {
	b := Box{Left: 1, Top: 2, Width: 3, Height: 4}
	l, tp, r, bo := b.Extents()
	if l != 1 || tp != 2 || r != 4 || bo != 6 {
		t.Errorf("Extents() = (%v,%v,%v,%v), want (1,2,4,6)", l, tp, r, bo)
	}
}
