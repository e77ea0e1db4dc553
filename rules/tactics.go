package rules

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/nstehr/sitewar/analysis"
	"github.com/nstehr/sitewar/ipc"
)

// selection says how a tactic narrows its candidates to one site.
type selection struct {
	shortList int
	// safest sorts the short-list by descending distance to the enemy base
	// instead of ascending.
	safest bool
	bold   bool
}

// pick sorts candidates by our ETA, keeps the closest shortList, reorders
// them by enemy base distance and returns one site id. targets must not be
// empty.
func pick(targets []analysis.Site, sel selection, boldETA float64) int {
	closest := slices.Clone(targets)
	sort.SliceStable(closest, func(i, j int) bool {
		return closest[i].OwnETA < closest[j].OwnETA
	})
	short := closest[:min(sel.shortList, len(closest))]
	sort.SliceStable(short, func(i, j int) bool {
		if sel.safest {
			return short[i].EnemyBaseDistance > short[j].EnemyBaseDistance
		}
		return short[i].EnemyBaseDistance < short[j].EnemyBaseDistance
	})
	if sel.bold {
		return BeBold(short, boldETA)
	}
	return short[0].SiteID
}

// BeBold prefers the first runner-up the queen reaches within boldETA turns
// over the head of the short-list; without one the head stays.
func BeBold(short []analysis.Site, boldETA float64) int {
	for _, s := range short[1:] {
		if s.OwnETA <= boldETA {
			return s.SiteID
		}
	}
	return short[0].SiteID
}

func (e RuleEnv) contest() selection {
	return selection{shortList: e.Config.ShortList, bold: true}
}

// PushTowers raises a tower on the best contested site, or waits when no
// site qualifies.
func (e RuleEnv) PushTowers() ipc.Command {
	targets := e.FilterEmpty()
	if len(targets) == 0 {
		slog.Debug("tactic", "name", "push_towers", "target", "none")
		return ipc.Wait{}
	}
	id := pick(targets, e.contest(), e.Config.BoldETA)
	slog.Debug("tactic", "name", "push_towers", "target", id)
	return ipc.Build{SiteID: id, Structure: ipc.BuildTower}
}

// PushTowersAggressively widens the short-list and goes straight for the site
// nearest the enemy base.
func (e RuleEnv) PushTowersAggressively() ipc.Command {
	targets := e.FilterEmpty()
	if len(targets) == 0 {
		slog.Debug("tactic", "name", "push_towers_aggressively", "target", "none")
		return ipc.Wait{}
	}
	id := pick(targets, selection{shortList: e.Config.AggressiveShortList}, e.Config.BoldETA)
	slog.Debug("tactic", "name", "push_towers_aggressively", "target", id)
	return ipc.Build{SiteID: id, Structure: ipc.BuildTower}
}

// BuildBarracks places a knight barracks, falling back to PushTowers.
func (e RuleEnv) BuildBarracks(bold bool) ipc.Command {
	targets := e.FilterBarracks()
	if len(targets) == 0 {
		slog.Debug("tactic", "name", "build_barracks", "fallback", "push_towers")
		return e.PushTowers()
	}
	sel := e.contest()
	sel.bold = bold
	id := pick(targets, sel, e.Config.BoldETA)
	slog.Debug("tactic", "name", "build_barracks", "target", id, "bold", bold)
	return ipc.Build{SiteID: id, Structure: ipc.BuildKnightBarracks}
}

// PushMines takes a mine on contested ground, falling back to PushTowers.
func (e RuleEnv) PushMines() (ipc.Command, error) {
	targets := e.FilterMoney()
	if len(targets) == 0 {
		slog.Debug("tactic", "name", "push_mines", "fallback", "push_towers")
		return e.PushTowers(), nil
	}
	id := pick(targets, e.contest(), e.Config.BoldETA)
	slog.Debug("tactic", "name", "push_mines", "target", id)
	return e.approachMine(id)
}

// EarnMoney upgrades the mine under the queen if it can grow, otherwise takes
// the safest nearby mine site, falling back to PushTowers.
func (e RuleEnv) EarnMoney() (ipc.Command, error) {
	touched := e.State.Own.TouchedSite
	if m, ok := e.State.Own.Mines[touched]; ok && m.Upgradable() {
		slog.Debug("tactic", "name", "earn_money", "upgrade", touched)
		return ipc.Build{SiteID: touched, Structure: ipc.BuildMine}, nil
	}
	targets := e.FilterMoney()
	if len(targets) == 0 {
		slog.Debug("tactic", "name", "earn_money", "fallback", "push_towers")
		return e.PushTowers(), nil
	}
	sel := e.contest()
	sel.safest = true
	id := pick(targets, sel, e.Config.BoldETA)
	slog.Debug("tactic", "name", "earn_money", "target", id)
	return e.approachMine(id)
}

// Defend heads for the safest site that can hold a tower. A sturdy queen
// keeps her mines; a weak one will build on anything. With no site left even
// under a relaxed hp ceiling she runs from the enemy base.
func (e RuleEnv) Defend() (ipc.Command, error) {
	var targets []analysis.Site
	if e.QueenHP() > e.Config.SturdyQueenHP {
		targets = e.FilterDanger()
	} else {
		targets = e.FilterEmergency(e.Config.TowerHPCeiling)
	}
	if len(targets) == 0 {
		targets = e.FilterEmergency(e.Config.RelaxedTowerHPCeiling)
	}
	if len(targets) == 0 {
		cmd := e.retreat()
		slog.Debug("tactic", "name", "defend", "retreat", cmd)
		return cmd, nil
	}
	sel := e.contest()
	sel.safest = true
	id := pick(targets, sel, e.Config.BoldETA)
	slog.Debug("tactic", "name", "defend", "target", id)
	return e.approachDefensively(id)
}
