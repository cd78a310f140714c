package world

import (
	"math"
	"testing"
)

func TestAddOnEmptyWorldNoCollisions(t *testing.T) {
	// Scenario 1: empty world, add returns no collisions (Add itself never
	// resolves collisions; this just checks the round trip of the world
	// staying queryable and consistent after Add).
	w, err := New[string](64)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Add("x", 0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	got := w.QueryBox(0, 0, 10, 10)
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("QueryBox = %v, want [x]", got)
	}
}

func TestAddRejectsDuplicateAndInvalidDimensions(t *testing.T) {
	w, _ := New[string](64)
	if err := w.Add("x", 0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	if err := w.Add("x", 1, 1, 10, 10); err == nil {
		t.Error("expected an error re-adding the same item")
	}
	if err := w.Add("y", 0, 0, 0, 10); err == nil {
		t.Error("expected an error for non-positive width")
	}
}

func TestNewRejectsNonPositiveCellSize(t *testing.T) {
	if _, err := New[string](0); err == nil {
		t.Error("expected an error constructing a world with cellSize 0")
	}
	if _, err := New[string](-1); err == nil {
		t.Error("expected an error constructing a world with negative cellSize")
	}
}

func TestStaticOverlapOnMove(t *testing.T) {
	// Scenario 2.
	w, _ := New[string](64)
	_ = w.Add("A", 0, 0, 10, 10)
	_ = w.Add("B", 4, 6, 10, 10)

	cols, err := w.Check("B", 4, 6, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 1 {
		t.Fatalf("got %d collisions, want 1", len(cols))
	}
	c := cols[0]
	if c.Other != "A" {
		t.Errorf("collided with %v, want A", c.Other)
	}
	if !c.IsIntersection {
		t.Error("expected IsIntersection = true")
	}
	if c.Ti >= 0 {
		t.Errorf("Ti = %v, want < 0", c.Ti)
	}
}

func TestTunnelingAlongX(t *testing.T) {
	// Scenario 3.
	w, _ := New[string](64)
	_ = w.Add("A", 1, 0, 2, 1)
	_ = w.Add("B", 5, 0, 4, 1)

	cols, err := w.Check("B", 15, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 1 {
		t.Fatalf("got %d collisions, want 1", len(cols))
	}
	c := cols[0]
	if c.IsIntersection {
		t.Error("expected a tunneling collision")
	}
	if math.Abs(c.Ti-0.2) > 1e-9 {
		t.Errorf("Ti = %v, want ~0.2", c.Ti)
	}
	if c.Nx != 1 || c.Ny != 0 {
		t.Errorf("normal = (%v,%v), want (1,0)", c.Nx, c.Ny)
	}
}

func TestSortOrderWithMultipleTunneledHits(t *testing.T) {
	// Scenario 4: A at (1,0,1,1) sweeps rightward through C at (5,0,1,1),
	// B at (7,0,1,1), and D at (9,0,1,1). check(A, 20, 0) must report them
	// ascending by time of impact: C, B, D; A itself must never appear.
	w, _ := New[string](64)
	_ = w.Add("A", 1, 0, 1, 1)
	_ = w.Add("B", 7, 0, 1, 1)
	_ = w.Add("C", 5, 0, 1, 1)
	_ = w.Add("D", 9, 0, 1, 1)

	cols, err := w.Check("A", 20, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	var order []string
	for _, c := range cols {
		order = append(order, c.Other)
	}

	for _, o := range order {
		if o == "A" {
			t.Fatal("A must not appear in its own collision list")
		}
	}
	if len(order) != 3 {
		t.Fatalf("got %v, want 3 collisions", order)
	}
	if order[0] != "C" || order[1] != "B" || order[2] != "D" {
		t.Errorf("order = %v, want [C B D]", order)
	}
}

func TestMoveUpdatesStoredBoxUnconditionally(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("A", 0, 0, 10, 10)
	_ = w.Add("B", 100, 100, 10, 10)

	if _, err := w.Move("B", 50, 50, nil, nil); err != nil {
		t.Fatal(err)
	}
	b, err := w.GetBox("B")
	if err != nil {
		t.Fatal(err)
	}
	if b.Left != 50 || b.Top != 50 {
		t.Errorf("box after move = (%v,%v), want (50,50)", b.Left, b.Top)
	}
	if b.Width != 10 || b.Height != 10 {
		t.Errorf("dimensions changed after move: (%v,%v)", b.Width, b.Height)
	}
}

func TestMoveRelocatesEvenWithCollisions(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("A", 0, 0, 10, 10)
	_ = w.Add("B", 20, 0, 10, 10)

	cols, err := w.Move("B", 4, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) == 0 {
		t.Fatal("expected a collision")
	}
	b, _ := w.GetBox("B")
	if b.Left != 4 || b.Top != 0 {
		t.Errorf("box after move = (%v,%v), want (4,0) even though a collision occurred", b.Left, b.Top)
	}
}

func TestTeleportIsRemoveThenAdd(t *testing.T) {
	w1, _ := New[string](64)
	_ = w1.Add("A", 0, 0, 10, 10)
	_ = w1.Teleport("A", 50, 50, 20, 20)

	w2, _ := New[string](64)
	_ = w2.Add("A", 0, 0, 10, 10)
	_ = w2.Remove("A")
	_ = w2.Add("A", 50, 50, 20, 20)

	b1, _ := w1.GetBox("A")
	b2, _ := w2.GetBox("A")
	if b1 != b2 {
		t.Errorf("teleport result %v != remove-then-add result %v", b1, b2)
	}
}

func TestRemoveUnknownItemErrors(t *testing.T) {
	w, _ := New[string](64)
	if err := w.Remove("ghost"); err == nil {
		t.Error("expected an error removing an unknown item")
	}
	if _, err := w.GetBox("ghost"); err == nil {
		t.Error("expected an error getting the box of an unknown item")
	}
	if _, err := w.Check("ghost", 0, 0, nil, nil); err == nil {
		t.Error("expected an error checking an unknown item")
	}
}

func TestAddRemoveRoundTripLeavesWorldEmpty(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("A", 0, 0, 10, 10)
	_ = w.Remove("A")

	if got := w.QueryBox(-1000, -1000, 2000, 2000); len(got) != 0 {
		t.Errorf("QueryBox after add+remove round trip = %v, want empty", got)
	}
}

func TestQueryPointRespectsTolerance(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("A", 0, 0, 10, 10)

	if got := w.QueryPoint(5, 5); len(got) != 1 {
		t.Errorf("QueryPoint interior = %v, want [A]", got)
	}
	// Boundary point: must not be contained.
	if got := w.QueryPoint(0, 5); len(got) != 0 {
		t.Errorf("QueryPoint on boundary = %v, want empty", got)
	}
}

func TestQuerySegmentOrdering(t *testing.T) {
	// Scenario 6: A at (10,0,1,10), B at (20,0,1,10). querySegment((0,5)
	// -> (30,5)) returns [A, B] in that order.
	w, _ := New[string](64)
	_ = w.Add("A", 10, 0, 1, 10)
	_ = w.Add("B", 20, 0, 1, 10)

	got := w.QuerySegment(0, 5, 30, 5)
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("QuerySegment = %v, want [A B]", got)
	}
}

func TestQuerySegmentWithCoords(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("A", 10, 0, 1, 10)

	hits := w.QuerySegmentWithCoords(0, 5, 30, 5)
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	h := hits[0]
	if h.Item != "A" {
		t.Errorf("item = %v, want A", h.Item)
	}
	if math.Abs(h.EntryX-10) > 1e-9 {
		t.Errorf("EntryX = %v, want 10", h.EntryX)
	}
	if math.Abs(h.ExitX-11) > 1e-9 {
		t.Errorf("ExitX = %v, want 11", h.ExitX)
	}
}

func TestCheckHonorsIgnoreAndFilter(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("A", 0, 0, 10, 10)
	_ = w.Add("B", 0, 0, 10, 10)
	_ = w.Add("C", 4, 6, 10, 10)

	cols, err := w.Check("C", 4, 6, []string{"A"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cols {
		if c.Other == "A" {
			t.Error("A should have been ignored")
		}
	}

	cols, err = w.Check("C", 4, 6, nil, func(other string) bool { return other == "B" })
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cols {
		if c.Other == "B" {
			t.Error("B should have been filtered out")
		}
	}
}
