// Package analysis turns a turn snapshot into per-site tactical facts: who
// owns what, which queen gets there first, and which enemy towers cover it.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/model"
)

// Unreachable is the ETA reported when a side has no queen this turn.
var Unreachable = math.Inf(1)

type Category int

const (
	Empty Category = iota
	OwnTower
	EnemyTower
	OwnMine
	EnemyMine
	OwnBarracks
	EnemyBarracks
)

func (c Category) String() string {
	switch c {
	case Empty:
		return "empty"
	case OwnTower:
		return "own_tower"
	case EnemyTower:
		return "enemy_tower"
	case OwnMine:
		return "own_mine"
	case EnemyMine:
		return "enemy_mine"
	case OwnBarracks:
		return "own_barracks"
	case EnemyBarracks:
		return "enemy_barracks"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Site is the per-turn verdict on one map site.
type Site struct {
	SiteID            int
	Category          Category
	OwnETA            float64
	EnemyETA          float64
	UnderFire         []int // enemy tower sites that can hit this one
	FireSuppressed    bool  // every tower in UnderFire has an own unit inside its radius
	EnemyBaseDistance float64
}

// Exposed reports whether an enemy tower can shoot at the site right now.
func (s Site) Exposed() bool {
	return len(s.UnderFire) > 0 && !s.FireSuppressed
}

// Analysis holds one Site per known site, ordered by site id.
type Analysis struct {
	Sites         []Site
	EnemyCentroid model.Point
	index         map[int]int
}

// Get looks a site up by id.
func (a Analysis) Get(id int) (Site, bool) {
	i, ok := a.index[id]
	if !ok {
		return Site{}, false
	}
	return a.Sites[i], true
}

// New indexes already analyzed sites. Sites must be ordered by id.
func New(sites []Site, centroid model.Point) Analysis {
	a := Analysis{
		Sites:         sites,
		EnemyCentroid: centroid,
		index:         make(map[int]int, len(sites)),
	}
	for i, s := range sites {
		a.index[s.SiteID] = i
	}
	return a
}

// Analyze classifies every site of the snapshot. It reads but never modifies
// its inputs, so two calls on the same snapshot return equal results.
func Analyze(m *model.Map, snap model.Snapshot, cfg config.Config) Analysis {
	a := New(categorize(snap), EnemyCentroid(m, snap))

	markFire(m, snap, &a)

	for i := range a.Sites {
		s := &a.Sites[i]
		site, ok := m.Site(s.SiteID)
		if !ok {
			s.OwnETA, s.EnemyETA = Unreachable, Unreachable
			continue
		}
		s.OwnETA = QueenETA(snap.Own.Queen, site, cfg.QueenSpeed)
		s.EnemyETA = QueenETA(snap.Enemy.Queen, site, cfg.QueenSpeed)
		s.EnemyBaseDistance = model.Distance(site.Center(), a.EnemyCentroid)
	}
	return a
}

func categorize(snap model.Snapshot) []Site {
	cats := make(map[int]Category)
	for id := range snap.Own.Towers {
		cats[id] = OwnTower
	}
	for id := range snap.Enemy.Towers {
		cats[id] = EnemyTower
	}
	setIfNew := func(id int, c Category) {
		if _, ok := cats[id]; !ok {
			cats[id] = c
		}
	}
	for id := range snap.Own.Mines {
		setIfNew(id, OwnMine)
	}
	for id := range snap.Enemy.Mines {
		setIfNew(id, EnemyMine)
	}
	for _, b := range []map[int]model.Barracks{snap.Own.KnightBarracks, snap.Own.ArcherBarracks, snap.Own.GiantBarracks} {
		for id := range b {
			setIfNew(id, OwnBarracks)
		}
	}
	for _, b := range []map[int]model.Barracks{snap.Enemy.KnightBarracks, snap.Enemy.ArcherBarracks, snap.Enemy.GiantBarracks} {
		for id := range b {
			setIfNew(id, EnemyBarracks)
		}
	}
	for _, id := range snap.FreeSites {
		setIfNew(id, Empty)
	}

	out := make([]Site, 0, len(cats))
	for id, c := range cats {
		out = append(out, Site{SiteID: id, Category: c, FireSuppressed: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SiteID < out[j].SiteID })
	return out
}

// EnemyCentroid averages the centers of every enemy structure, falling back to
// the enemy queen when the enemy has built nothing.
func EnemyCentroid(m *model.Map, snap model.Snapshot) model.Point {
	var sum model.Point
	n := 0
	for _, id := range snap.Enemy.StructureSites() {
		site, ok := m.Site(id)
		if !ok {
			continue
		}
		sum = sum.Add(site.Center())
		n++
	}
	if n == 0 {
		if snap.Enemy.Queen == nil {
			return model.Point{}
		}
		return snap.Enemy.Queen.Pos()
	}
	return sum.Scale(1 / float64(n))
}

// QueenETA is the turns a queen needs to reach the edge of site.
func QueenETA(queen *model.Unit, site model.Site, speed float64) float64 {
	if queen == nil {
		return Unreachable
	}
	d := model.Distance(queen.Pos(), site.Center()) - float64(site.Radius)
	return model.TravelTime(d, speed)
}

// TowerSuppressed reports whether any of units stands strictly inside the
// tower's attack radius, which keeps the tower from firing.
func TowerSuppressed(site model.Site, tower model.Tower, units []model.Unit) bool {
	for _, u := range units {
		if model.Distance(site.Center(), u.Pos()) < float64(tower.AttackRadius) {
			return true
		}
	}
	return false
}

// markFire applies two independent rules. First, every site inside a tower's
// current fire table is under fire from it and stays suppressed only if every
// such tower is. Second, a site carrying an enemy tower is always under fire
// from itself.
func markFire(m *model.Map, snap model.Snapshot, a *Analysis) {
	ownUnits := snap.Own.CombatUnits()

	towerIDs := make([]int, 0, len(snap.Enemy.Towers))
	for id := range snap.Enemy.Towers {
		towerIDs = append(towerIDs, id)
	}
	sort.Ints(towerIDs)

	suppressed := make(map[int]bool, len(towerIDs))
	for _, id := range towerIDs {
		tower := snap.Enemy.Towers[id]
		site, ok := m.Site(id)
		if !ok {
			continue
		}
		sup := TowerSuppressed(site, tower, ownUnits)
		suppressed[id] = sup
		for _, target := range site.CurrentlyFiringAt(tower.HP) {
			i, ok := a.index[target]
			if !ok {
				continue
			}
			a.Sites[i].UnderFire = append(a.Sites[i].UnderFire, id)
			a.Sites[i].FireSuppressed = a.Sites[i].FireSuppressed && sup
		}
	}

	for _, id := range towerIDs {
		i, ok := a.index[id]
		if !ok {
			continue
		}
		s := &a.Sites[i]
		if len(s.UnderFire) == 0 || s.UnderFire[0] != id {
			s.UnderFire = append([]int{id}, s.UnderFire...)
		}
		s.FireSuppressed = s.FireSuppressed && suppressed[id]
	}
}
