package engine

import (
	"os"
	"strconv"

	"github.com/ksander/retain/internal/progress"
	"github.com/ksander/retain/internal/rating"
	"github.com/ksander/retain/internal/srs"
)

// Config holds all engine tuning. Every option has a hard default, so the
// engine works with no external configuration at all.
type Config struct {
	// InitialEase is the ease factor assigned to new review items.
	InitialEase float64

	// FirstIntervalDays and SecondIntervalDays are the review intervals
	// after the first and second successful repetitions.
	FirstIntervalDays  int
	SecondIntervalDays int

	// ReviewBatchSize caps how many due items a review session serves.
	ReviewBatchSize int

	// EloK is the rating update step size.
	EloK int

	// StreakGraceHours is the window in which a streak freeze can bridge
	// missed days.
	StreakGraceHours int

	// CompletionXP is awarded for a lesson's first completion; ReviewXP
	// for each successful recall.
	CompletionXP int
	ReviewXP     int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		InitialEase:        2.5,
		FirstIntervalDays:  1,
		SecondIntervalDays: 6,
		ReviewBatchSize:    10,
		EloK:               rating.DefaultK,
		StreakGraceHours:   48,
		CompletionXP:       5,
		ReviewXP:           1,
	}
}

// ConfigFromEnv builds a Config from RETAIN_* environment variables,
// falling back to defaults for unset or malformed values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v, ok := envFloat("RETAIN_INITIAL_EASE"); ok {
		cfg.InitialEase = v
	}
	if v, ok := envInt("RETAIN_FIRST_INTERVAL_DAYS"); ok {
		cfg.FirstIntervalDays = v
	}
	if v, ok := envInt("RETAIN_SECOND_INTERVAL_DAYS"); ok {
		cfg.SecondIntervalDays = v
	}
	if v, ok := envInt("RETAIN_REVIEW_BATCH_SIZE"); ok {
		cfg.ReviewBatchSize = v
	}
	if v, ok := envInt("RETAIN_ELO_K"); ok {
		cfg.EloK = v
	}
	if v, ok := envInt("RETAIN_STREAK_GRACE_HOURS"); ok {
		cfg.StreakGraceHours = v
	}
	return cfg
}

func envInt(name string) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func envFloat(name string) (float64, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func (c Config) srsConfig() srs.Config {
	return srs.Config{
		InitialEase:        c.InitialEase,
		FirstIntervalDays:  c.FirstIntervalDays,
		SecondIntervalDays: c.SecondIntervalDays,
	}
}

func (c Config) progressConfig() progress.Config {
	return progress.Config{
		CompletionXP:     c.CompletionXP,
		StreakGraceHours: c.StreakGraceHours,
	}
}
