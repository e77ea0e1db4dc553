package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	src := "queen_speed: 75\nearly_game_turns: 25\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.QueenSpeed != 75 {
		t.Errorf("QueenSpeed = %v, want 75", c.QueenSpeed)
	}
	if c.EarlyGameTurns != 25 {
		t.Errorf("EarlyGameTurns = %d, want 25", c.EarlyGameTurns)
	}
	// Untouched keys keep their defaults.
	if c.KnightCost != Default().KnightCost {
		t.Errorf("KnightCost = %d, want default %d", c.KnightCost, Default().KnightCost)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("queen_speed: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error for zero queen speed")
	}
	if !strings.Contains(err.Error(), "queen_speed") {
		t.Errorf("error %q does not name queen_speed", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero short list", func(c *Config) { c.ShortList = 0 }, "short_list"},
		{"zero aggressive list", func(c *Config) { c.AggressiveShortList = 0 }, "aggressive_short_list"},
		{"inverted distances", func(c *Config) { c.EnemyCloseDistance = 900 }, "enemy_close_distance"},
		{"inverted ceilings", func(c *Config) { c.TowerHPCeiling = 500 }, "tower_hp_ceiling"},
		{"negative knight speed", func(c *Config) { c.KnightSpeed = -1 }, "knight_speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestShippedConfigMatchesDefault(t *testing.T) {
	c, err := Load(filepath.Join("..", "configs", "sitewar.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Errorf("configs/sitewar.yaml = %+v\nwant %+v", c, Default())
	}
}
