package rules

import "github.com/nstehr/sitewar/analysis"

// Every filter drops enemy towers and sites an active enemy tower covers.
func reachable(s analysis.Site) bool {
	return s.Category != analysis.EnemyTower && !s.Exposed()
}

// winsRace reports whether our queen reaches the site strictly first.
func winsRace(s analysis.Site) bool { return s.OwnETA < s.EnemyETA }

func (e RuleEnv) filter(keep func(analysis.Site) bool) []analysis.Site {
	var out []analysis.Site
	for _, s := range e.Analysis.Sites {
		if reachable(s) && keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (e RuleEnv) maxedMine(s analysis.Site) bool {
	if s.Category != analysis.OwnMine {
		return false
	}
	m, ok := e.State.Own.Mines[s.SiteID]
	return ok && m.Maxed()
}

func (e RuleEnv) towerAbove(s analysis.Site, hp int) bool {
	if s.Category != analysis.OwnTower {
		return false
	}
	t, ok := e.State.Own.Towers[s.SiteID]
	return ok && t.HP > hp
}

func (e RuleEnv) barracksBusy(s analysis.Site) bool {
	if s.Category != analysis.OwnBarracks {
		return false
	}
	b, ok := e.State.Own.Barracks(s.SiteID)
	return ok && b.Busy()
}

// FilterEmpty keeps sites worth a tower: not our barracks, not a mine that is
// already maxed, not a tower that is already healthy.
func (e RuleEnv) FilterEmpty() []analysis.Site {
	return e.filter(func(s analysis.Site) bool {
		return winsRace(s) &&
			!e.maxedMine(s) &&
			s.Category != analysis.OwnBarracks &&
			!e.towerAbove(s, e.Config.TowerHPCeiling)
	})
}

// FilterBarracks keeps sites for a new knight barracks. The race is relaxed:
// we may arrive up to a full training cycle after the enemy queen.
func (e RuleEnv) FilterBarracks() []analysis.Site {
	margin := float64(e.Config.KnightTrainTurns + 1)
	return e.filter(func(s analysis.Site) bool {
		return s.OwnETA < s.EnemyETA-margin &&
			s.Category != analysis.OwnBarracks &&
			s.Category != analysis.OwnMine
	})
}

// FilterMoney keeps sites that can still yield gold.
func (e RuleEnv) FilterMoney() []analysis.Site {
	return e.filter(func(s analysis.Site) bool {
		return winsRace(s) &&
			!e.maxedMine(s) &&
			e.State.ForMining[s.SiteID] != 0 &&
			!e.barracksBusy(s)
	})
}

// FilterEmergency keeps sites where a tower can still be raised or topped up
// to hpCeiling.
func (e RuleEnv) FilterEmergency(hpCeiling int) []analysis.Site {
	return e.filter(func(s analysis.Site) bool {
		return winsRace(s) &&
			!e.towerAbove(s, hpCeiling) &&
			!e.barracksBusy(s)
	})
}

// FilterDanger is FilterEmergency that also refuses to give up a mine.
func (e RuleEnv) FilterDanger() []analysis.Site {
	return e.filter(func(s analysis.Site) bool {
		return winsRace(s) &&
			!e.towerAbove(s, e.Config.TowerHPCeiling) &&
			s.Category != analysis.OwnMine &&
			!e.barracksBusy(s)
	})
}
