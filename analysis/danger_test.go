package analysis

import (
	"testing"

	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/model"
)

func TestDangerSingleKnight(t *testing.T) {
	cfg := config.Default()
	in := model.TurnInput{
		Units: []model.UnitRecord{
			{X: 0, Y: 0, Owner: model.Friendly, Kind: model.Queen, HP: 100},
			{X: 900, Y: 900, Owner: model.Enemy, Kind: model.Queen, HP: 100},
			{X: 100, Y: 0, Owner: model.Enemy, Kind: model.Knight, HP: 30},
		},
	}
	got := Danger(model.NewSnapshot(1, in), cfg)
	// eta = 100 / 100 = 1.0, danger = 30 − 1.0
	if got != 29.0 {
		t.Errorf("Danger = %v, want 29.0", got)
	}
}

func TestDangerIgnoresOtherUnits(t *testing.T) {
	cfg := config.Default()
	in := model.TurnInput{
		Units: []model.UnitRecord{
			{X: 0, Y: 0, Owner: model.Friendly, Kind: model.Queen, HP: 100},
			{X: 50, Y: 0, Owner: model.Enemy, Kind: model.Archer, HP: 45},
			{X: 50, Y: 0, Owner: model.Enemy, Kind: model.Giant, HP: 200},
			{X: 50, Y: 0, Owner: model.Friendly, Kind: model.Knight, HP: 30},
		},
	}
	if got := Danger(model.NewSnapshot(1, in), cfg); got != 0 {
		t.Errorf("Danger = %v, want 0", got)
	}
}

func TestDangerFarKnightsGoNegative(t *testing.T) {
	cfg := config.Default()
	in := model.TurnInput{
		Units: []model.UnitRecord{
			{X: 0, Y: 0, Owner: model.Friendly, Kind: model.Queen, HP: 100},
			{X: 4000, Y: 0, Owner: model.Enemy, Kind: model.Knight, HP: 30},
			{X: 0, Y: 300, Owner: model.Enemy, Kind: model.Knight, HP: 10},
		},
	}
	// (30 − 40) + (10 − 3) = −3
	if got := Danger(model.NewSnapshot(1, in), cfg); got != -3 {
		t.Errorf("Danger = %v, want -3", got)
	}
}

func TestDangerWithoutQueen(t *testing.T) {
	in := model.TurnInput{
		Units: []model.UnitRecord{{X: 0, Y: 0, Owner: model.Enemy, Kind: model.Knight, HP: 30}},
	}
	if got := Danger(model.NewSnapshot(1, in), config.Default()); got != 0 {
		t.Errorf("Danger = %v, want 0", got)
	}
}
