package rules

import (
	"errors"
	"sort"

	"github.com/nstehr/sitewar/analysis"
)

// TrainingSite picks the knight barracks to train from. Barracks the enemy
// queen reaches within one training cycle come first, each group ordered by
// how far away the enemy queen is, farthest first.
func (e RuleEnv) TrainingSite() (int, bool) {
	type candidate struct {
		id  int
		eta float64
	}
	var cands []candidate
	for id := range e.State.Own.KnightBarracks {
		eta := analysis.Unreachable
		if s, ok := e.Analysis.Get(id); ok {
			eta = s.EnemyETA
		}
		cands = append(cands, candidate{id: id, eta: eta})
	}
	if len(cands) == 0 {
		return 0, false
	}

	margin := float64(e.Config.KnightTrainTurns + 1)
	sort.Slice(cands, func(i, j int) bool {
		ai, aj := cands[i].eta > margin, cands[j].eta > margin
		if ai != aj {
			return !ai
		}
		if cands[i].eta != cands[j].eta {
			return cands[i].eta > cands[j].eta
		}
		return cands[i].id < cands[j].id
	})
	return cands[0].id, true
}

var errNoKnightBarracks = errors.New("no knight barracks to train from")
