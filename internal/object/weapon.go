package object

import "math/rand"

// Launch is what a weapon knows about the ship when it fires.
type Launch struct {
	Pos      Vec2
	Rotation float64 // Degrees
	Vel      Vec2
	Rand     *rand.Rand
}

// Weapon is an ammo-limited launcher producing projectiles of type T.
// Ammo always stays within [0, MaxAmmo].
type Weapon[T any] struct {
	Name    string
	ammo    int
	maxAmmo int
	fire    func(Launch) []T
}

// NewWeapon creates a weapon with the given capacity and starting ammo.
func NewWeapon[T any](name string, maxAmmo, ammo int, fire func(Launch) []T) *Weapon[T] {
	w := &Weapon[T]{Name: name, maxAmmo: max(maxAmmo, 0), fire: fire}
	w.AddAmmo(ammo)
	return w
}

// Ammo returns the current ammo count.
func (w *Weapon[T]) Ammo() int {
	return w.ammo
}

// MaxAmmo returns the capacity.
func (w *Weapon[T]) MaxAmmo() int {
	return w.maxAmmo
}

// AddAmmo adds n rounds, clamped to capacity. Negative n is ignored.
func (w *Weapon[T]) AddAmmo(n int) {
	if n <= 0 {
		return
	}
	w.ammo = min(w.ammo+n, w.maxAmmo)
}

// UseAmmo spends n rounds. It fails, spending nothing, when fewer than n are left.
func (w *Weapon[T]) UseAmmo(n int) bool {
	if n < 0 || w.ammo < n {
		return false
	}
	w.ammo -= n
	return true
}

// Fire spends one round and returns the launched projectiles. With no ammo it
// returns nil.
func (w *Weapon[T]) Fire(l Launch) []T {
	if !w.UseAmmo(1) {
		return nil
	}
	return w.fire(l)
}

// NewRocketLauncher fires a fanned volley of rockets for one ammo unit.
// It starts empty.
func NewRocketLauncher() *Weapon[*Rocket] {
	return NewWeapon("rockets", RocketMaxAmmo, 0, func(l Launch) []*Rocket {
		rockets := make([]*Rocket, 0, RocketsPerVolley)
		first := -RocketSpread * float64(RocketsPerVolley-1) / 2
		for i := range RocketsPerVolley {
			rot := l.Rotation + first + float64(i)*RocketSpread
			rockets = append(rockets, NewRocket(l.Pos, rot, l.Vel))
		}
		return rockets
	})
}

// NewMineLayer drops one mine behind the ship per ammo unit. It starts empty.
func NewMineLayer() *Weapon[*Mine] {
	return NewWeapon("mines", MineMaxAmmo, 0, func(l Launch) []*Mine {
		back := Vec2{Y: -1}.Rotate(l.Rotation)
		pos := l.Pos.Add(back.Scale(MineDeployDistance))
		launch := back.Scale(MineDeploySpeed).Add(l.Vel.Scale(MineInherit))

		drift := 0.0
		if l.Rand != nil {
			drift = l.Rand.Float64() * 360
		}
		return []*Mine{NewMine(pos, launch, drift)}
	})
}
