package rules

import (
	"github.com/nstehr/sitewar/analysis"
	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/model"
)

// RuleEnv wraps one turn of derived state and exposes helper methods callable
// from expr expressions.
type RuleEnv struct {
	Map      *model.Map
	State    model.Snapshot
	Analysis analysis.Analysis
	Threat   float64
	Config   config.Config
}

// NewEnv runs the analyzer and the danger assessor over a snapshot.
func NewEnv(m *model.Map, snap model.Snapshot, cfg config.Config) RuleEnv {
	return RuleEnv{
		Map:      m,
		State:    snap,
		Analysis: analysis.Analyze(m, snap, cfg),
		Threat:   analysis.Danger(snap, cfg),
		Config:   cfg,
	}
}

func (e RuleEnv) Turn() int { return e.State.Turn }

func (e RuleEnv) EarlyGame() bool { return e.State.Turn < e.Config.EarlyGameTurns }

func (e RuleEnv) Danger() float64 { return e.Threat }

func (e RuleEnv) InDanger() bool { return e.Threat > 0 }

func (e RuleEnv) QueenHP() int {
	if e.State.Own.Queen == nil {
		return 0
	}
	return e.State.Own.Queen.HP
}

func (e RuleEnv) QueenHurt() bool { return e.QueenHP() < e.Config.HurtQueenHP }

func (e RuleEnv) Gold() int { return e.State.Own.OwnedGold }

// CanAfford reports whether gold covers packs batches of knights.
func (e RuleEnv) CanAfford(packs int) bool {
	return e.State.Own.OwnedGold >= e.Config.KnightCost*packs
}

func (e RuleEnv) Income() int { return e.State.Own.Income() }

func (e RuleEnv) HighIncome() bool { return e.Income() > e.Config.HighIncome }

func (e RuleEnv) HasKnightBarracks() bool { return len(e.State.Own.KnightBarracks) > 0 }

func (e RuleEnv) TowerCount() int { return len(e.State.Own.Towers) }

func (e RuleEnv) EnoughTowers() bool { return e.TowerCount() >= e.Config.EnoughTowers }

func (e RuleEnv) EnemyHasKnights() bool { return len(e.State.Enemy.Knights) > 0 }

// EnemyTrainingKnights reports whether any enemy knight barracks has a batch
// in progress.
func (e RuleEnv) EnemyTrainingKnights() bool {
	for _, b := range e.State.Enemy.KnightBarracks {
		if b.Busy() {
			return true
		}
	}
	return false
}

// QueenDistance is the distance between the two queens, or Unreachable if
// either is missing.
func (e RuleEnv) QueenDistance() float64 {
	own, enemy := e.State.Own.Queen, e.State.Enemy.Queen
	if own == nil || enemy == nil {
		return analysis.Unreachable
	}
	return model.Distance(own.Pos(), enemy.Pos())
}

func (e RuleEnv) EnemyQueenFar() bool {
	d := e.QueenDistance()
	return d != analysis.Unreachable && d > e.Config.EnemyFarDistance
}

func (e RuleEnv) EnemyQueenTooClose() bool { return e.QueenDistance() < e.Config.EnemyCloseDistance }

// Packs is how many knight batches to budget for. It is constant today; the
// hook exists so a config can change it.
func (e RuleEnv) Packs() int { return e.Config.TrainPacks }

func (e RuleEnv) CanTrainKnights() bool {
	return e.HasKnightBarracks() && e.CanAfford(e.Packs())
}
