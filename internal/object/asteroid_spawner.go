package object

// Field spawning.
const (
	AsteroidSpawnRate = 0.8 // Seconds between edge spawns

	spawnMinSpeed = 40.0
	spawnMaxSpeed = 100.0
	spawnMaxVeer  = 30.0 // Degrees off the inward edge normal
	edgeCount     = 4
)

// AsteroidSpawner feeds new asteroids in from the playfield edges while the
// live population is under the cap.
type AsteroidSpawner struct {
	Rate  float64
	timer float64
	live  func() int
}

// NewAsteroidSpawner creates a spawner. live reports the current asteroid count.
func NewAsteroidSpawner(live func() int) *AsteroidSpawner {
	return &AsteroidSpawner{Rate: AsteroidSpawnRate, live: live}
}

// Update spawns one asteroid each time the timer passes Rate.
func (s *AsteroidSpawner) Update(ctx UpdateContext) {
	s.timer += ctx.Dt
	if s.timer <= s.Rate {
		return
	}
	s.timer = 0

	if s.live != nil && s.live() >= AsteroidMaxCount {
		return
	}

	radius := AsteroidMinRadius * float64(1+ctx.Rand.Intn(AsteroidKinds))
	ctx.Spawner.Spawn(NewAsteroidAtEdge(ctx, radius))
}

// NewAsteroidAtEdge creates an asteroid just outside a random edge, heading
// inward with some random veer.
func NewAsteroidAtEdge(ctx UpdateContext, radius float64) *Asteroid {
	rng := ctx.Rand
	w, h := ctx.Screen.Width, ctx.Screen.Height

	var pos, inward Vec2
	switch rng.Intn(edgeCount) {
	case 0: // Left
		pos, inward = Vec2{X: -radius, Y: rng.Float64() * h}, Vec2{X: 1}
	case 1: // Right
		pos, inward = Vec2{X: w + radius, Y: rng.Float64() * h}, Vec2{X: -1}
	case 2: // Top
		pos, inward = Vec2{X: rng.Float64() * w, Y: -radius}, Vec2{Y: 1}
	default: // Bottom
		pos, inward = Vec2{X: rng.Float64() * w, Y: h + radius}, Vec2{Y: -1}
	}

	speed := spawnMinSpeed + rng.Float64()*(spawnMaxSpeed-spawnMinSpeed)
	veer := (rng.Float64()*2 - 1) * spawnMaxVeer
	vel := inward.Rotate(veer).Scale(speed)

	return NewAsteroid(pos, vel, radius, rng)
}
