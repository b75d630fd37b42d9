package segment

import (
	"errors"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should validate, got %v", err)
	}
	if err := BroadConfig().Validate(); err != nil {
		t.Errorf("BroadConfig should validate, got %v", err)
	}
}

func TestBroadConfig_WidensDeviation(t *testing.T) {
	normal := DefaultConfig()
	broad := BroadConfig()
	if broad.VerticalDeviationPx <= normal.VerticalDeviationPx {
		t.Errorf("broad deviation %d should exceed normal %d",
			broad.VerticalDeviationPx, normal.VerticalDeviationPx)
	}
}

func TestConfigValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min char height", func(c *Config) { c.MinCharHeight = 0 }},
		{"negative max char height", func(c *Config) { c.MaxCharHeight = -1 }},
		{"zero min char width", func(c *Config) { c.MinCharWidth = 0 }},
		{"zero max box width", func(c *Config) { c.MaxBoxWidth = 0 }},
		{"zero max allowed char width", func(c *Config) { c.MaxAllowedCharWidth = 0 }},
		{"zero vertical deviation", func(c *Config) { c.VerticalDeviationPx = 0 }},
		{"zero neighbor gap", func(c *Config) { c.NeighborGapMaxPx = 0 }},
		{"zero max characters", func(c *Config) { c.MaxCharactersOnPlate = 0 }},
		{"zero canvas size", func(c *Config) { c.LetterCanvasSize = 0 }},
		{"zero dedup delta x", func(c *Config) { c.CogDedupDeltaX = 0 }},
		{"negative dedup delta y", func(c *Config) { c.CogDedupDeltaY = -1 }},
		{"negative letter padding", func(c *Config) { c.LetterPadding = -1 }},
		{"inverted height band", func(c *Config) { c.MinCharHeight = 60; c.MaxCharHeight = 40 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}
