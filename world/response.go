package world

// ResponseKind names one of the responses a resolved Collision can be
// turned into: the three derived responses collision.Collision already
// exposes, plus Cross, which applies no correction at all (the mover
// passes through; the collision is still reported).
type ResponseKind string

const (
	ResponseTouch  ResponseKind = "touch"
	ResponseSlide  ResponseKind = "slide"
	ResponseBounce ResponseKind = "bounce"
	ResponseCross  ResponseKind = "cross"
)

// ResponsePolicy maps pairs of caller-assigned tags to a ResponseKind.
// It is deliberately kept outside World: Check and Move never consult it,
// so a caller that wants tag-driven response selection opts in explicitly
// by building one of these and calling Resolve itself after Check/Move.
type ResponsePolicy[T comparable] struct {
	tags    map[T]string
	perPair map[string]map[string]ResponseKind
	perTag  map[string]ResponseKind
}

// NewResponsePolicy builds an empty policy; every item defaults to
// ResponseTouch until tagged and configured otherwise.
func NewResponsePolicy[T comparable]() *ResponsePolicy[T] {
	return &ResponsePolicy[T]{
		tags:    make(map[T]string),
		perPair: make(map[string]map[string]ResponseKind),
		perTag:  make(map[string]ResponseKind),
	}
}

// Tag assigns item to a named category (e.g. "player", "wall", "enemy").
func (p *ResponsePolicy[T]) Tag(item T, tag string) {
	p.tags[item] = tag
}

// TagOf returns item's assigned tag, or "" if it was never tagged.
func (p *ResponsePolicy[T]) TagOf(item T) string {
	return p.tags[item]
}

// SetResponse records how a body tagged `tag` should respond when it
// collides with a body tagged `otherTag`.
func (p *ResponsePolicy[T]) SetResponse(tag, otherTag string, kind ResponseKind) {
	m, ok := p.perPair[tag]
	if !ok {
		m = make(map[string]ResponseKind)
		p.perPair[tag] = m
	}
	m[otherTag] = kind
}

// SetDefaultResponse sets the response used for `tag` against any other tag
// that has no SetResponse entry of its own.
func (p *ResponsePolicy[T]) SetDefaultResponse(tag string, kind ResponseKind) {
	p.perTag[tag] = kind
}

// ResponseFor looks up the configured response for a collision, using the
// moving item's tag and the other item's tag: a specific per-pair entry
// first, then the mover's default, then ResponseTouch.
func (p *ResponsePolicy[T]) ResponseFor(c *Collision[T]) ResponseKind {
	tag := p.tags[c.Item]
	otherTag := p.tags[c.Other]
	if m, ok := p.perPair[tag]; ok {
		if kind, ok := m[otherTag]; ok {
			return kind
		}
	}
	if kind, ok := p.perTag[tag]; ok {
		return kind
	}
	return ResponseTouch
}

// Resolve applies the policy's configured response to c and returns the
// corrected goal position the mover should end up at. ResponseCross leaves
// goalX/goalY untouched, letting the mover pass through.
func (p *ResponsePolicy[T]) Resolve(c *Collision[T], goalX, goalY float64) (float64, float64, error) {
	switch p.ResponseFor(c) {
	case ResponseSlide:
		s, err := c.Slide()
		if err != nil {
			return goalX, goalY, err
		}
		return s.X, s.Y, nil
	case ResponseBounce:
		b, err := c.Bounce()
		if err != nil {
			return goalX, goalY, err
		}
		return b.X, b.Y, nil
	case ResponseCross:
		return goalX, goalY, nil
	default:
		t, err := c.Touch()
		if err != nil {
			return goalX, goalY, err
		}
		return t.X, t.Y, nil
	}
}
