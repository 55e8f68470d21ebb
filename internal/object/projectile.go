package object

// Shot tuning.
const (
	ShotRadius   = 1.5
	ShotSpeed    = 500.0
	ShotCooldown = 0.3 // Seconds between shots
)

// Shot is a straight-flying bullet. It is the only entity that does not
// wrap: it disappears once it leaves the playfield.
type Shot struct {
	Body
}

// NewShot creates a shot at pos flying along heading.
func NewShot(pos, heading Vec2) *Shot {
	return &Shot{Body: Body{Pos: pos, Vel: heading.Scale(ShotSpeed), Radius: ShotRadius}}
}

// Update moves the shot and removes it once off-screen.
func (s *Shot) Update(ctx UpdateContext) bool {
	s.Move(ctx.Dt)
	if ctx.Screen.Outside(s.Pos, s.Radius) {
		s.MarkDestroyed()
	}
	return s.IsDestroyed()
}
