// Package config provides tuning constants and environment-driven settings.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integers. Unparsable values yield fallback.
func GetEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(GetEnv(key, "")))
	if err != nil {
		return fallback
	}
	return v
}

// GetEnvFloat is GetEnv for floats. Unparsable values yield fallback.
func GetEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(GetEnv(key, "")), 64)
	if err != nil {
		return fallback
	}
	return v
}

// GetEnvBool is GetEnv for booleans (1/true/yes/on). Unparsable values yield fallback.
func GetEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(GetEnv(key, ""))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// Settings are the runtime knobs read from the environment.
type Settings struct {
	Seed      int64   // 0 picks a time-based seed
	TargetFPS int     // Frame limiter target
	Audio     bool    // Enable speaker output for local play
	Volume    float64 // Master volume 0..1
	LogLevel  string  // debug, info, warn, error
	LogFile   string  // Empty logs to the frontend's default sink

	SSHHost    string
	SSHPort    string
	SSHHostKey string
}

// Load reads an optional .env file from the working directory and then
// builds Settings from the environment. Variables already set in the
// environment win over the file.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, err
	}
	return FromEnv(), nil
}

// FromEnv builds Settings from the current environment only.
func FromEnv() Settings {
	fps := GetEnvInt("WARPFIELD_FPS", DefaultTargetFPS)
	if fps <= 0 {
		fps = DefaultTargetFPS
	}
	volume := GetEnvFloat("WARPFIELD_VOLUME", DefaultVolume)
	volume = min(max(volume, 0), 1)

	return Settings{
		Seed:       int64(GetEnvInt("WARPFIELD_SEED", 0)),
		TargetFPS:  fps,
		Audio:      GetEnvBool("WARPFIELD_AUDIO", true),
		Volume:     volume,
		LogLevel:   GetEnv("WARPFIELD_LOG_LEVEL", "info"),
		LogFile:    GetEnv("WARPFIELD_LOG_FILE", ""),
		SSHHost:    GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:    GetEnv("SSH_PORT", DefaultSSHPort),
		SSHHostKey: GetEnv("SSH_HOST_KEY", DefaultSSHHostKey),
	}
}
