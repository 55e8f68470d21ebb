package object

// Targeting is the shared homing context for rockets. It indexes the live
// asteroids for the current frame and keeps reference-counted reservations
// so rockets spread over different targets.
type Targeting struct {
	live     map[ID]*Asteroid
	order    []*Asteroid
	anchor   Vec2
	reserved map[ID]int
}

// NewTargeting returns an empty registry.
func NewTargeting() *Targeting {
	return &Targeting{
		live:     make(map[ID]*Asteroid),
		reserved: make(map[ID]int),
	}
}

// Refresh indexes the asteroids alive this frame. anchor is the point nearest
// targets are measured from (the player ship).
func (t *Targeting) Refresh(asteroids []*Asteroid, anchor Vec2) {
	clear(t.live)
	t.order = t.order[:0]
	for _, a := range asteroids {
		if a.IsDestroyed() {
			continue
		}
		t.live[a.ID] = a
		t.order = append(t.order, a)
	}
	t.anchor = anchor
}

// Lookup resolves a target id to its asteroid, or nil when it is gone.
func (t *Targeting) Lookup(id ID) *Asteroid {
	a := t.live[id]
	if a == nil || a.IsDestroyed() {
		return nil
	}
	return a
}

// Acquire reserves the asteroid nearest the anchor that no other rocket holds.
// If every asteroid is held it falls back to the nearest one overall and
// shares its reservation. Returns nil when there are no asteroids.
func (t *Targeting) Acquire() *Asteroid {
	var free, nearest *Asteroid
	freeDist, nearestDist := 0.0, 0.0

	for _, a := range t.order {
		if a.IsDestroyed() {
			continue
		}
		d := a.Pos.Sub(t.anchor).LenSquared()
		if nearest == nil || d < nearestDist {
			nearest, nearestDist = a, d
		}
		if t.reserved[a.ID] == 0 && (free == nil || d < freeDist) {
			free, freeDist = a, d
		}
	}

	target := free
	if target == nil {
		target = nearest
	}
	if target != nil {
		t.reserved[target.ID]++
	}
	return target
}

// Release drops one reservation on id.
func (t *Targeting) Release(id ID) {
	if n := t.reserved[id]; n > 1 {
		t.reserved[id] = n - 1
	} else {
		delete(t.reserved, id)
	}
}

// Forget drops every reservation on an asteroid that was destroyed.
func (t *Targeting) Forget(id ID) {
	delete(t.reserved, id)
	delete(t.live, id)
}

// Reservations returns how many rockets hold id.
func (t *Targeting) Reservations(id ID) int {
	return t.reserved[id]
}

// Reset forgets everything, used when a session starts over.
func (t *Targeting) Reset() {
	clear(t.live)
	clear(t.reserved)
	t.order = t.order[:0]
}
