package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every game constant and decision threshold the bot uses.
// It is passed by value so a running engine never sees it change.
type Config struct {
	QueenSpeed  float64 `yaml:"queen_speed"`
	QueenRadius float64 `yaml:"queen_radius"`

	TowerMaxHP    float64 `yaml:"tower_max_hp"`
	FireAreaPerHP float64 `yaml:"fire_area_per_hp"` // attack-circle area bought by one tower hp

	KnightCost       int     `yaml:"knight_cost"`
	KnightSpeed      float64 `yaml:"knight_speed"`
	KnightTrainTurns int     `yaml:"knight_train_turns"`
	TrainPacks       int     `yaml:"train_packs"`

	EarlyGameTurns        int     `yaml:"early_game_turns"`
	HurtQueenHP           int     `yaml:"hurt_queen_hp"`
	SturdyQueenHP         int     `yaml:"sturdy_queen_hp"`
	HighIncome            int     `yaml:"high_income"`
	EnemyFarDistance      float64 `yaml:"enemy_far_distance"`
	EnemyCloseDistance    float64 `yaml:"enemy_close_distance"`
	EnoughTowers          int     `yaml:"enough_towers"`
	TowerHPCeiling        int     `yaml:"tower_hp_ceiling"`
	RelaxedTowerHPCeiling int     `yaml:"relaxed_tower_hp_ceiling"`

	BoldETA             float64 `yaml:"bold_eta"`
	ShortList           int     `yaml:"short_list"`
	AggressiveShortList int     `yaml:"aggressive_short_list"`
	DefensiveOffset     float64 `yaml:"defensive_offset"`
}

// Default returns the constants of the standard ruleset.
func Default() Config {
	return Config{
		QueenSpeed:  60,
		QueenRadius: 30,

		TowerMaxHP:    800,
		FireAreaPerHP: 1000,

		KnightCost:       80,
		KnightSpeed:      100,
		KnightTrainTurns: 5,
		TrainPacks:       1,

		EarlyGameTurns:        40,
		HurtQueenHP:           30,
		SturdyQueenHP:         50,
		HighIncome:            6,
		EnemyFarDistance:      600,
		EnemyCloseDistance:    300,
		EnoughTowers:          4,
		TowerHPCeiling:        300,
		RelaxedTowerHPCeiling: 400,

		BoldETA:             2,
		ShortList:           2,
		AggressiveShortList: 3,
		DefensiveOffset:     60,
	}
}

// Load overlays the YAML file at path on Default. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every setting that would make the engine divide by zero
// or produce an empty short-list.
func (c Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float64
	}{
		{"queen_speed", c.QueenSpeed},
		{"knight_speed", c.KnightSpeed},
		{"fire_area_per_hp", c.FireAreaPerHP},
		{"tower_max_hp", c.TowerMaxHP},
		{"knight_cost", float64(c.KnightCost)},
		{"train_packs", float64(c.TrainPacks)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}
	if c.ShortList < 1 {
		errs = append(errs, fmt.Errorf("short_list must be at least 1, got %d", c.ShortList))
	}
	if c.AggressiveShortList < 1 {
		errs = append(errs, fmt.Errorf("aggressive_short_list must be at least 1, got %d", c.AggressiveShortList))
	}
	if c.EnemyCloseDistance > c.EnemyFarDistance {
		errs = append(errs, fmt.Errorf("enemy_close_distance (%v) exceeds enemy_far_distance (%v)", c.EnemyCloseDistance, c.EnemyFarDistance))
	}
	if c.TowerHPCeiling > c.RelaxedTowerHPCeiling {
		errs = append(errs, fmt.Errorf("tower_hp_ceiling (%d) exceeds relaxed_tower_hp_ceiling (%d)", c.TowerHPCeiling, c.RelaxedTowerHPCeiling))
	}
	return errors.Join(errs...)
}
