package game

import (
	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/object"
)

// killCause records what destroyed an asteroid.
type killCause string

const (
	causeShot   killCause = "shot"
	causeRocket killCause = "rocket"
	causeMine   killCause = "mine"
)

// ScoreFor returns the points for destroying an asteroid of the given radius.
func ScoreFor(radius float64) int {
	switch {
	case radius <= object.AsteroidMinRadius:
		return config.ScoreSmall
	case radius <= 2*object.AsteroidMinRadius:
		return config.ScoreMedium
	default:
		return config.ScoreLarge
	}
}

// collideAsteroids pairs overlapping asteroids. An asteroid that already
// collided this frame takes no further part, and among several partners
// the lowest index wins.
func (s *Session) collideAsteroids() {
	s.grid.Reset()
	for i, a := range s.Asteroids {
		if !a.IsDestroyed() {
			s.grid.Insert(a.Pos, i)
		}
	}

	for i, a := range s.Asteroids {
		if a.IsDestroyed() {
			continue
		}
		s.near = s.grid.Candidates(a.Pos, s.near[:0])
		for _, j := range s.near {
			if j <= i {
				continue
			}
			b := s.Asteroids[j]
			if b.IsDestroyed() || !a.CollidesWith(&b.Body) {
				continue
			}

			s.log.Debug("asteroid_collision", "a", a.ID, "b", b.ID)
			s.explode(a)
			s.explode(b)
			s.shake(config.ShakeExplosion)
			s.split(a)
			s.split(b)
			break
		}
	}
}

// collidePlayer checks the ship against each asteroid, and each asteroid
// against the shots. The pass ends at the first asteroid that hits the ship.
func (s *Session) collidePlayer() {
	p := s.Player
	for _, a := range s.Asteroids {
		if a.IsDestroyed() {
			continue
		}
		if !p.IsInvincible() && p.HitsAsteroid(a) {
			s.hitPlayer(a)
			return
		}

		for _, shot := range s.Shots {
			if shot.IsDestroyed() || !a.CollidesWith(&shot.Body) {
				continue
			}
			shot.MarkDestroyed()
			s.shake(config.ShakeExplosion * a.Radius / object.AsteroidMinRadius * 0.5)
			s.destroy(a, causeShot)
			break
		}
	}
}

func (s *Session) hitPlayer(a *object.Asteroid) {
	p := s.Player
	switch p.TakeHit(a.Pos) {
	case object.HitShieldBreak:
		s.log.Debug("player_hit", "shield", true, "lives", s.Lives)
		s.fx.Trigger(object.Effect{Kind: object.EffectShieldBreak, Pos: p.Pos, Radius: p.Radius})
		s.shake(config.ShakePlayerHit)
	case object.HitLifeLost:
		s.Lives--
		s.log.Debug("player_hit", "shield", false, "lives", s.Lives)
		s.fx.Trigger(object.Effect{Kind: object.EffectShipExplosion, Pos: p.Pos, Radius: p.Radius})
		s.shake(config.ShakePlayerHit * 2)
		if s.Lives <= 0 {
			s.Lives = 0
			s.Over = true
			s.log.Debug("game_over", "score", s.Score)
		}
	}
}

// collideRockets detonates each rocket on the first asteroid it touches.
func (s *Session) collideRockets() {
	for _, r := range s.Rockets {
		if r.IsDestroyed() {
			continue
		}
		for _, a := range s.Asteroids {
			if a.IsDestroyed() || !r.CollidesWith(&a.Body) {
				continue
			}
			s.fx.Trigger(object.Effect{Kind: object.EffectRocketExplosion, Pos: r.Pos, Radius: object.RocketBlastRadius})
			s.shake(config.ShakeExplosion * config.ShakeRocketMultiply)
			r.Detonate(s.Targets)
			s.destroy(a, causeRocket)
			break
		}
	}
}

// collideMines detonates armed mines touched by an asteroid.
func (s *Session) collideMines() {
	for _, m := range s.Mines {
		if m.IsDestroyed() || !m.Armed() {
			continue
		}
		for _, a := range s.Asteroids {
			if !a.IsDestroyed() && m.CollidesWith(&a.Body) {
				s.detonate(m)
				break
			}
		}
	}
}

// detonate destroys every asteroid whose edge lies within the blast radius.
func (s *Session) detonate(m *object.Mine) {
	s.fx.Trigger(object.Effect{Kind: object.EffectMineExplosion, Pos: m.Pos, Radius: object.MineExplosionRadius})
	s.shake(config.ShakeExplosion * config.ShakeMineMultiply)

	kills := 0
	for _, a := range s.Asteroids {
		if !a.IsDestroyed() && m.InBlast(a) {
			s.destroy(a, causeMine)
			kills++
		}
	}
	m.MarkDestroyed()
	s.log.Debug("mine_detonated", "kills", kills)
}

// collectPowerUps applies every pickup the ship touches.
func (s *Session) collectPowerUps() {
	p := s.Player
	for _, pu := range s.PowerUps {
		if pu.IsDestroyed() || !p.CollidesWith(&pu.Body) {
			continue
		}
		if pu.Apply(p) {
			s.log.Debug("powerup_collected", "kind", pu.Kind)
			s.fx.Trigger(object.Effect{Kind: object.EffectPickup, Pos: pu.Pos})
		}
	}
}

// destroy scores and splits an asteroid killed by the player.
func (s *Session) destroy(a *object.Asteroid, cause killCause) {
	points := ScoreFor(a.Radius)
	s.Score += points
	s.log.Debug("asteroid_destroyed", "cause", cause, "radius", a.Radius, "score", points)

	s.explode(a)
	if cause == causeShot || cause == causeRocket {
		s.rollDrops(a.Pos)
	}
	s.split(a)
}

func (s *Session) explode(a *object.Asteroid) {
	s.fx.Trigger(object.Effect{Kind: object.EffectAsteroidExplosion, Pos: a.Pos, Radius: a.Radius})
}

// split destroys a and queues its children.
func (s *Session) split(a *object.Asteroid) {
	a.MarkDestroyed()
	children := a.Split(s.liveAsteroids(), s.rng)
	s.Targets.Forget(a.ID)
	for _, c := range children {
		s.Spawn(c)
	}
	if len(children) > 0 {
		s.log.Debug("asteroid_split", "radius", a.Radius, "children", len(children))
	}
}
