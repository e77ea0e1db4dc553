package rules

import (
	"slices"
	"testing"

	"github.com/nstehr/sitewar/analysis"
	"github.com/nstehr/sitewar/model"
)

func ids(sites []analysis.Site) []int {
	out := make([]int, len(sites))
	for i, s := range sites {
		out[i] = s.SiteID
	}
	return out
}

// structuredTurn places, on the square map: a maxed own mine on 0, an own
// tower at 350 hp on 1, a busy own knight barracks on 2, and an upgradable
// own mine on 3.
func structuredTurn() model.TurnInput {
	in := openingTurn()
	in.Sites[0] = model.StructureRecord{SiteID: 0, Gold: 50, MaxMineSize: 2, Kind: model.MineKind, Owner: model.Friendly, Param1: 2}
	in.Sites[1] = model.StructureRecord{SiteID: 1, Gold: 50, Kind: model.TowerKind, Owner: model.Friendly, Param1: 350, Param2: 200}
	in.Sites[2] = model.StructureRecord{SiteID: 2, Gold: 50, Kind: model.BarracksKind, Owner: model.Friendly, Param1: 3, Param2: int(model.Knight)}
	in.Sites[3] = model.StructureRecord{SiteID: 3, Gold: 50, MaxMineSize: 3, Kind: model.MineKind, Owner: model.Friendly, Param1: 1}
	return in
}

func TestFilterEmpty(t *testing.T) {
	env := handEnv(structuredTurn(), model.Point{},
		site(0, analysis.OwnMine, 1, 9, 0),
		site(1, analysis.OwnTower, 1, 9, 0),
		site(2, analysis.OwnBarracks, 1, 9, 0),
		site(3, analysis.OwnMine, 1, 9, 0),
	)
	// Maxed mine, tower above 300 hp and our barracks are all excluded.
	if got := ids(env.FilterEmpty()); !slices.Equal(got, []int{3}) {
		t.Errorf("FilterEmpty() = %v, want [3]", got)
	}
}

func TestFilterEmptyRace(t *testing.T) {
	env := handEnv(openingTurn(), model.Point{},
		site(0, analysis.Empty, 2, 3, 0),
		site(1, analysis.Empty, 3, 3, 0), // tie goes to the enemy
		site(2, analysis.Empty, 4, 3, 0),
		site(3, analysis.EnemyTower, 0, 9, 0),
	)
	if got := ids(env.FilterEmpty()); !slices.Equal(got, []int{0}) {
		t.Errorf("FilterEmpty() = %v, want [0]", got)
	}
}

func TestFiltersDropExposedSites(t *testing.T) {
	exposed := site(0, analysis.Empty, 1, 9, 0)
	exposed.UnderFire = []int{3}
	exposed.FireSuppressed = false
	suppressed := site(1, analysis.Empty, 1, 9, 0)
	suppressed.UnderFire = []int{3}

	env := handEnv(openingTurn(), model.Point{}, exposed, suppressed)
	filters := map[string]func() []analysis.Site{
		"empty":     env.FilterEmpty,
		"barracks":  env.FilterBarracks,
		"money":     env.FilterMoney,
		"danger":    env.FilterDanger,
		"emergency": func() []analysis.Site { return env.FilterEmergency(300) },
	}
	for name, f := range filters {
		if got := ids(f()); !slices.Equal(got, []int{1}) {
			t.Errorf("%s filter = %v, want [1]", name, got)
		}
	}
}

func TestFilterBarracksMargin(t *testing.T) {
	// Default knight training takes 5 turns, so we need to arrive more than
	// 6 turns before the enemy queen.
	env := handEnv(structuredTurn(), model.Point{},
		site(0, analysis.Empty, 1, 7, 0),
		site(1, analysis.Empty, 1, 7.5, 0),
		site(2, analysis.OwnBarracks, 1, 20, 0),
		site(3, analysis.OwnMine, 1, 20, 0),
	)
	if got := ids(env.FilterBarracks()); !slices.Equal(got, []int{1}) {
		t.Errorf("FilterBarracks() = %v, want [1]", got)
	}
}

func TestFilterMoney(t *testing.T) {
	in := structuredTurn()
	in.Sites[1].Gold = 0
	env := handEnv(in, model.Point{},
		site(0, analysis.OwnMine, 1, 9, 0),
		site(1, analysis.OwnTower, 1, 9, 0),
		site(2, analysis.OwnBarracks, 1, 9, 0),
		site(3, analysis.OwnMine, 1, 9, 0),
	)
	// 0 is maxed, 1 has no gold left, 2 is busy training.
	if got := ids(env.FilterMoney()); !slices.Equal(got, []int{3}) {
		t.Errorf("FilterMoney() = %v, want [3]", got)
	}
}

func TestFilterEmergencyCeiling(t *testing.T) {
	env := handEnv(structuredTurn(), model.Point{},
		site(0, analysis.OwnMine, 1, 9, 0),
		site(1, analysis.OwnTower, 1, 9, 0),
		site(2, analysis.OwnBarracks, 1, 9, 0),
		site(3, analysis.OwnMine, 1, 9, 0),
	)
	if got := ids(env.FilterEmergency(300)); !slices.Equal(got, []int{0, 3}) {
		t.Errorf("FilterEmergency(300) = %v, want [0 3]", got)
	}
	if got := ids(env.FilterEmergency(400)); !slices.Equal(got, []int{0, 1, 3}) {
		t.Errorf("FilterEmergency(400) = %v, want [0 1 3]", got)
	}
}

func TestFilterDangerKeepsMines(t *testing.T) {
	in := structuredTurn()
	in.Sites[1].Param1 = 100
	env := handEnv(in, model.Point{},
		site(0, analysis.OwnMine, 1, 9, 0),
		site(1, analysis.OwnTower, 1, 9, 0),
		site(2, analysis.Empty, 1, 9, 0),
		site(3, analysis.OwnMine, 1, 9, 0),
	)
	if got := ids(env.FilterDanger()); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("FilterDanger() = %v, want [1 2]", got)
	}
}
