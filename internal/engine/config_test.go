package engine

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InitialEase != 2.5 {
		t.Errorf("InitialEase = %v, want 2.5", cfg.InitialEase)
	}
	if cfg.FirstIntervalDays != 1 || cfg.SecondIntervalDays != 6 {
		t.Errorf("intervals = %d/%d, want 1/6", cfg.FirstIntervalDays, cfg.SecondIntervalDays)
	}
	if cfg.EloK != 24 {
		t.Errorf("EloK = %d, want 24", cfg.EloK)
	}
	if cfg.ReviewBatchSize != 10 {
		t.Errorf("ReviewBatchSize = %d, want 10", cfg.ReviewBatchSize)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("RETAIN_INITIAL_EASE", "2.2")
	t.Setenv("RETAIN_ELO_K", "32")
	t.Setenv("RETAIN_REVIEW_BATCH_SIZE", "25")

	cfg := ConfigFromEnv()
	if cfg.InitialEase != 2.2 {
		t.Errorf("InitialEase = %v, want 2.2", cfg.InitialEase)
	}
	if cfg.EloK != 32 {
		t.Errorf("EloK = %d, want 32", cfg.EloK)
	}
	if cfg.ReviewBatchSize != 25 {
		t.Errorf("ReviewBatchSize = %d, want 25", cfg.ReviewBatchSize)
	}
	// Untouched values keep their defaults.
	if cfg.StreakGraceHours != 48 {
		t.Errorf("StreakGraceHours = %d, want 48", cfg.StreakGraceHours)
	}
}

func TestConfigFromEnv_RejectsMalformed(t *testing.T) {
	t.Setenv("RETAIN_ELO_K", "not-a-number")
	t.Setenv("RETAIN_FIRST_INTERVAL_DAYS", "-3")
	t.Setenv("RETAIN_INITIAL_EASE", "0")

	cfg := ConfigFromEnv()
	def := DefaultConfig()
	if cfg != def {
		t.Errorf("malformed env leaked into config: %+v", cfg)
	}
}
