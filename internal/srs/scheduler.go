package srs

import (
	"math"
	"time"
)

const (
	// minEaseFactor is the SM-2 floor; below it intervals stop shrinking.
	minEaseFactor = 1.3

	// passQuality is the lowest quality counted as a successful recall.
	passQuality = 3
)

// Config holds scheduler tuning. Zero values fall back to defaults, so a
// missing external config source is harmless.
type Config struct {
	InitialEase        float64 // ease factor for new items (default 2.5)
	FirstIntervalDays  int     // interval after the first successful repetition (default 1)
	SecondIntervalDays int     // interval after the second (default 6)
	MaxIntervalDays    int     // interval clamp (default 365)
}

// DefaultConfig returns the standard SM-2 tuning.
func DefaultConfig() Config {
	return Config{
		InitialEase:        2.5,
		FirstIntervalDays:  1,
		SecondIntervalDays: 6,
		MaxIntervalDays:    365,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.InitialEase == 0 {
		c.InitialEase = d.InitialEase
	}
	if c.FirstIntervalDays == 0 {
		c.FirstIntervalDays = d.FirstIntervalDays
	}
	if c.SecondIntervalDays == 0 {
		c.SecondIntervalDays = d.SecondIntervalDays
	}
	if c.MaxIntervalDays == 0 {
		c.MaxIntervalDays = d.MaxIntervalDays
	}
	return c
}

// Scheduler applies the spaced repetition update rule to review items.
type Scheduler struct {
	cfg Config
}

// NewScheduler creates a scheduler, filling zero config fields with defaults.
func NewScheduler(cfg Config) *Scheduler {
	return &Scheduler{cfg: cfg.withDefaults()}
}

// NewItem creates a review item for a lesson fact. It carries no due date
// yet, so it is immediately due.
func (s *Scheduler) NewItem(id, lessonID string) *Item {
	return &Item{
		ID:         id,
		LessonID:   lessonID,
		EaseFactor: s.cfg.InitialEase,
		Strength:   ComputeStrength(0, s.cfg.InitialEase),
	}
}

// QualityFromChoice maps the coarse 4-level UI rating to the 0-5 quality
// scale: didn't know, hard, good, easy.
func QualityFromChoice(choice int) (int, error) {
	switch choice {
	case 0:
		return 1, nil
	case 1:
		return 2, nil
	case 2:
		return 4, nil
	case 3:
		return 5, nil
	}
	return 0, &InvalidQualityError{Quality: choice}
}

// Review applies one graded recall to the item. Quality below 3 is a
// lapse: the repetition count and interval reset while the ease factor is
// left alone. A successful recall grows the interval by the ease factor,
// then adjusts the ease factor for the next round. The item is untouched
// if quality is out of range.
func (s *Scheduler) Review(it *Item, quality int, now time.Time) error {
	if quality < 0 || quality > 5 {
		return &InvalidQualityError{Quality: quality}
	}

	if quality < passQuality {
		it.Repetitions = 0
		it.IntervalDays = 1
	} else {
		it.Repetitions++
		switch it.Repetitions {
		case 1:
			it.IntervalDays = s.cfg.FirstIntervalDays
		case 2:
			it.IntervalDays = s.cfg.SecondIntervalDays
		default:
			// Interval grows on the ease factor as it stood before
			// this review; the factor updates afterwards.
			it.IntervalDays = int(math.Round(float64(it.IntervalDays) * it.EaseFactor))
		}

		q := float64(quality)
		ease := it.EaseFactor + 0.1 - (5-q)*(0.08+(5-q)*0.02)
		if ease < minEaseFactor {
			ease = minEaseFactor
		}
		it.EaseFactor = ease
	}

	if it.IntervalDays < 1 {
		it.IntervalDays = 1
	}
	if it.IntervalDays > s.cfg.MaxIntervalDays {
		it.IntervalDays = s.cfg.MaxIntervalDays
	}

	it.DueAt = now.AddDate(0, 0, it.IntervalDays)
	it.History = append(it.History, Review{Quality: quality, At: now})
	it.Strength = ComputeStrength(it.IntervalDays, it.EaseFactor)
	return nil
}
