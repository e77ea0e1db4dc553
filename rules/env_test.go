package rules

import (
	"testing"

	"github.com/nstehr/sitewar/analysis"
	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/model"
)

// squareSites is four radius-50 sites on the corners of a 500×500 square.
func squareSites() []model.Site {
	return []model.Site{
		{ID: 0, X: 0, Y: 0, Radius: 50},
		{ID: 1, X: 500, Y: 0, Radius: 50},
		{ID: 2, X: 0, Y: 500, Radius: 50},
		{ID: 3, X: 500, Y: 500, Radius: 50},
	}
}

func freeRecord(id int) model.StructureRecord {
	return model.StructureRecord{SiteID: id, Gold: 100, MaxMineSize: 2, Kind: model.NoStructureKind, Owner: model.NoOwner, Param1: -1, Param2: -1}
}

func queenRecord(owner model.Owner, x, y, hp int) model.UnitRecord {
	return model.UnitRecord{X: x, Y: y, Owner: owner, Kind: model.Queen, HP: hp}
}

// openingTurn has every site free, our queen in the top-left corner and the
// enemy queen in the bottom-right one.
func openingTurn() model.TurnInput {
	return model.TurnInput{
		TouchedSite: model.NoSite,
		Sites:       []model.StructureRecord{freeRecord(0), freeRecord(1), freeRecord(2), freeRecord(3)},
		Units: []model.UnitRecord{
			queenRecord(model.Friendly, 10, 10, 100),
			queenRecord(model.Enemy, 490, 490, 100),
		},
	}
}

// squareEnv runs the full analysis over the square map.
func squareEnv(turn int, in model.TurnInput) RuleEnv {
	cfg := config.Default()
	m := model.NewMap(squareSites(), cfg)
	return NewEnv(m, model.NewSnapshot(turn, in), cfg)
}

// handEnv builds an environment whose analysis is given directly, so ETAs
// can be chosen exactly. The map and snapshot still come from the square
// fixture.
func handEnv(in model.TurnInput, centroid model.Point, sites ...analysis.Site) RuleEnv {
	cfg := config.Default()
	return RuleEnv{
		Map:      model.NewMap(squareSites(), cfg),
		State:    model.NewSnapshot(50, in),
		Analysis: analysis.New(sites, centroid),
		Config:   cfg,
	}
}

// site is an uncontested analyzed site.
func site(id int, cat analysis.Category, own, enemy, baseDist float64) analysis.Site {
	return analysis.Site{
		SiteID:            id,
		Category:          cat,
		OwnETA:            own,
		EnemyETA:          enemy,
		FireSuppressed:    true,
		EnemyBaseDistance: baseDist,
	}
}

func affordOne(e RuleEnv) bool { return e.CanAfford(1) }

func TestEnvThresholds(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name string
		env  func() RuleEnv
		pred func(RuleEnv) bool
		want bool
	}{
		{"early game before cutoff", func() RuleEnv { return squareEnv(cfg.EarlyGameTurns-1, openingTurn()) }, RuleEnv.EarlyGame, true},
		{"early game at cutoff", func() RuleEnv { return squareEnv(cfg.EarlyGameTurns, openingTurn()) }, RuleEnv.EarlyGame, false},
		{"afford exact cost", func() RuleEnv {
			in := openingTurn()
			in.Gold = cfg.KnightCost
			return squareEnv(1, in)
		}, affordOne, true},
		{"cannot afford one short", func() RuleEnv {
			in := openingTurn()
			in.Gold = cfg.KnightCost - 1
			return squareEnv(1, in)
		}, affordOne, false},
		{"queens far apart", func() RuleEnv { return squareEnv(1, openingTurn()) }, RuleEnv.EnemyQueenFar, true},
		{"queens not close", func() RuleEnv { return squareEnv(1, openingTurn()) }, RuleEnv.EnemyQueenTooClose, false},
		{"distance exactly far threshold is not far", func() RuleEnv {
			in := openingTurn()
			in.Units[0] = queenRecord(model.Friendly, 0, 0, 100)
			in.Units[1] = queenRecord(model.Enemy, int(cfg.EnemyFarDistance), 0, 100)
			return squareEnv(1, in)
		}, RuleEnv.EnemyQueenFar, false},
		{"distance exactly close threshold is not close", func() RuleEnv {
			in := openingTurn()
			in.Units[0] = queenRecord(model.Friendly, 0, 0, 100)
			in.Units[1] = queenRecord(model.Enemy, int(cfg.EnemyCloseDistance), 0, 100)
			return squareEnv(1, in)
		}, RuleEnv.EnemyQueenTooClose, false},
		{"hurt queen", func() RuleEnv {
			in := openingTurn()
			in.Units[0].HP = cfg.HurtQueenHP - 1
			return squareEnv(1, in)
		}, RuleEnv.QueenHurt, true},
		{"queen at hurt threshold is fine", func() RuleEnv {
			in := openingTurn()
			in.Units[0].HP = cfg.HurtQueenHP
			return squareEnv(1, in)
		}, RuleEnv.QueenHurt, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.env()); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvStructureCounts(t *testing.T) {
	in := openingTurn()
	in.Sites[0] = model.StructureRecord{SiteID: 0, Kind: model.TowerKind, Owner: model.Friendly, Param1: 300, Param2: 200}
	in.Sites[1] = model.StructureRecord{SiteID: 1, Kind: model.MineKind, Owner: model.Friendly, MaxMineSize: 5, Param1: 4}
	in.Sites[2] = model.StructureRecord{SiteID: 2, Kind: model.MineKind, Owner: model.Friendly, MaxMineSize: 5, Param1: 3}
	in.Sites[3] = model.StructureRecord{SiteID: 3, Kind: model.BarracksKind, Owner: model.Enemy, Param1: 2, Param2: int(model.Knight)}
	env := squareEnv(50, in)

	if got := env.TowerCount(); got != 1 {
		t.Errorf("TowerCount() = %d, want 1", got)
	}
	if env.EnoughTowers() {
		t.Error("one tower should not be enough")
	}
	if got := env.Income(); got != 7 {
		t.Errorf("Income() = %d, want 7", got)
	}
	if !env.HighIncome() {
		t.Error("income 7 should count as high")
	}
	if env.HasKnightBarracks() {
		t.Error("the knight barracks belongs to the enemy")
	}
	if !env.EnemyTrainingKnights() {
		t.Error("enemy barracks with progress 2 should count as training")
	}
	if env.EnemyHasKnights() {
		t.Error("no enemy knights on the field")
	}
}

func TestEnvMissingQueen(t *testing.T) {
	in := openingTurn()
	in.Units = in.Units[1:]
	env := squareEnv(50, in)

	if got := env.QueenDistance(); got != analysis.Unreachable {
		t.Errorf("QueenDistance() = %v, want Unreachable", got)
	}
	if env.EnemyQueenFar() {
		t.Error("a missing queen is not far")
	}
	if env.EnemyQueenTooClose() {
		t.Error("a missing queen is not close")
	}
	if got := env.QueenHP(); got != 0 {
		t.Errorf("QueenHP() = %d, want 0", got)
	}
	if env.InDanger() {
		t.Error("no queen means no danger")
	}
}
