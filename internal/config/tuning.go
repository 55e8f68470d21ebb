package config

import "time"

// Playfield - logical units shared by every frontend.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Session
const (
	InitialLives = 3
)

// Scoring by asteroid radius tier.
const (
	ScoreLarge  = 20  // radius > 2×min
	ScoreMedium = 50  // radius <= 2×min
	ScoreSmall  = 100 // radius <= min
)

// Drops rolled when a shot or rocket destroys an asteroid.
const (
	PowerUpDropChance = 0.3
	ShieldDropWeight  = 1.0
	SpeedDropWeight   = 1.0

	WeaponDropChance     = 0.3
	RocketAmmoDropWeight = 1.0
	MineAmmoDropWeight   = 1.0
)

// Warp slow motion
const (
	WarpTimeScale = 0.15 // Simulation speed while charging
)

// Screen shake
const (
	ShakeMax            = 20.0 // Intensity cap
	ShakeDecay          = 4.0  // Share of the intensity lost per second
	ShakePlayerHit      = 8.0
	ShakeWarp           = 3.0
	ShakeExplosion      = 2.0 // Asteroid collisions; kills scale it by radius
	ShakeRocketMultiply = 2.0
	ShakeMineMultiply   = 4.0
)

// Rendering
const (
	InvincibleBlinkHz = 10.0
	MaxTermWidth      = 240 // Larger terminals are letterboxed
	MaxTermHeight     = 68  // 136 half-block rows keep the 16:9 playfield
)

// Frame loop
const (
	DefaultTargetFPS = 60
	MaxFrameDelta    = 100 * time.Millisecond // Longer stalls are clamped
)

// Inactivity (SSH sessions)
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)

// Runtime defaults
const (
	DefaultVolume      = 0.6
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultSSHHostKey  = "/app/keys/host_key"
	ShutdownGrace      = 5 * time.Second
	ShutdownNoticeTime = 2 * time.Second // Time the shutdown banner stays visible
)
