package world

import "testing"

func TestResponsePolicyDefaultIsTouch(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("A", 0, 0, 10, 10)
	_ = w.Add("wall", 4, 6, 10, 10)

	p := NewResponsePolicy[string]()
	cols, err := w.Check("wall", 4, 6, nil, nil)
	if err != nil || len(cols) != 1 {
		t.Fatalf("setup: cols=%v err=%v", cols, err)
	}
	if got := p.ResponseFor(cols[0]); got != ResponseTouch {
		t.Errorf("ResponseFor (untagged) = %v, want %v", got, ResponseTouch)
	}
}

func TestResponsePolicyPerPairOverridesDefault(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("player", 20, 0, 10, 10)
	_ = w.Add("wall", 0, 0, 10, 10)

	p := NewResponsePolicy[string]()
	p.Tag("player", "player")
	p.Tag("wall", "wall")
	p.SetDefaultResponse("player", ResponseSlide)
	p.SetResponse("player", "wall", ResponseBounce)

	cols, err := w.Check("player", 4, 0, nil, nil)
	if err != nil || len(cols) != 1 {
		t.Fatalf("setup: cols=%v err=%v", cols, err)
	}
	if got := p.ResponseFor(cols[0]); got != ResponseBounce {
		t.Errorf("ResponseFor(player vs wall) = %v, want %v (per-pair override)", got, ResponseBounce)
	}
}

func TestResponsePolicyCrossLeavesGoalUnchanged(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("bullet", 20, 0, 2, 2)
	_ = w.Add("enemy", 0, 0, 10, 10)

	p := NewResponsePolicy[string]()
	p.Tag("bullet", "bullet")
	p.Tag("enemy", "enemy")
	p.SetResponse("bullet", "enemy", ResponseCross)

	cols, err := w.Check("bullet", 4, 0, nil, nil)
	if err != nil || len(cols) != 1 {
		t.Fatalf("setup: cols=%v err=%v", cols, err)
	}
	x, y, err := p.Resolve(cols[0], 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if x != 4 || y != 0 {
		t.Errorf("Resolve(cross) = (%v,%v), want goal unchanged (4,0)", x, y)
	}
}

func TestResponsePolicyResolveSlide(t *testing.T) {
	w, _ := New[string](64)
	_ = w.Add("B", 20, 0, 10, 10)
	_ = w.Add("A", 0, 0, 10, 10)

	p := NewResponsePolicy[string]()
	p.Tag("B", "mover")
	p.SetDefaultResponse("mover", ResponseSlide)

	cols, err := w.Check("B", 5, 3, nil, nil)
	if err != nil || len(cols) != 1 {
		t.Fatalf("setup: cols=%v err=%v", cols, err)
	}
	x, y, err := p.Resolve(cols[0], 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if x != 10 || y != 3 {
		t.Errorf("Resolve(slide) = (%v,%v), want (10,3)", x, y)
	}
}
