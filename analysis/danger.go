package analysis

import (
	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/model"
)

// Danger sums hp − eta over the enemy knights, where eta is the turns a knight
// needs to reach our queen. Healthy knights close by weigh the most; a result
// of zero or below means no threat.
func Danger(snap model.Snapshot, cfg config.Config) float64 {
	q := snap.Own.Queen
	if q == nil {
		return 0
	}
	total := 0.0
	for _, k := range snap.Enemy.Knights {
		eta := model.Distance(k.Pos(), q.Pos()) / cfg.KnightSpeed
		total += float64(k.HP) - eta
	}
	return total
}
