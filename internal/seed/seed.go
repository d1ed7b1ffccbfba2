// Package seed provides seed selection for palette and gradient randomisation.
// A seed fully determines the colours drawn for unlocked slots, so the same
// seed with the same inputs always regenerates the same palette.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"
)

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeContent generates the seed from a hash of the request (base colour, scheme, slots).
	ModeContent Mode = "content"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses non-deterministic random seed (varies each run).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// input identifies the request and is only used by ModeContent.
func Calculate(input string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		if input == "" {
			return 0, fmt.Errorf("input is required for content-based seed mode")
		}
		return ContentSeed(input), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the parts into a deterministic seed.
func ContentSeed(parts ...string) int64 {
	hasher := sha256.New()
	hasher.Write([]byte(strings.Join(parts, "\x00")))
	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// NewSource returns a pseudo-random source seeded with seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- colour selection, not security sensitive
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, manual, random)", s)
}
