package rules

import (
	"fmt"

	"github.com/nstehr/sitewar/ipc"
	"github.com/nstehr/sitewar/model"
)

// ApproachPoint is the spot offset away from site's center along the line
// from the enemy centroid through the site. A centroid on the site's center
// gives no direction and the center itself is returned.
func ApproachPoint(site model.Site, centroid model.Point, offset float64) model.Point {
	dir := site.Center().Sub(centroid).Unit()
	return site.Center().Add(dir.Scale(offset))
}

// buildOrApproach builds when the queen already touches the site and walks
// to ApproachPoint otherwise.
func (e RuleEnv) buildOrApproach(siteID int, structure string, offset func(model.Site) float64) (ipc.Command, error) {
	if e.State.Own.TouchedSite == siteID {
		return ipc.Build{SiteID: siteID, Structure: structure}, nil
	}
	site, ok := e.Map.Site(siteID)
	if !ok {
		return nil, fmt.Errorf("unknown site %d", siteID)
	}
	x, y := ApproachPoint(site, e.Analysis.EnemyCentroid, offset(site)).Ints()
	return ipc.Move{X: x, Y: y}, nil
}

// approachMine stops the queen just outside the site on the side facing away
// from the enemy.
func (e RuleEnv) approachMine(siteID int) (ipc.Command, error) {
	return e.buildOrApproach(siteID, ipc.BuildMine, func(s model.Site) float64 {
		return float64(s.Radius) + e.Config.QueenRadius
	})
}

// approachDefensively heads for a point a fixed short distance behind the
// site's center, ready to raise a tower on contact.
func (e RuleEnv) approachDefensively(siteID int) (ipc.Command, error) {
	return e.buildOrApproach(siteID, ipc.BuildTower, func(model.Site) float64 {
		return e.Config.DefensiveOffset
	})
}

// retreat mirrors the queen's position through herself away from the enemy
// centroid.
func (e RuleEnv) retreat() ipc.Command {
	q := e.State.Own.Queen
	if q == nil {
		return ipc.Wait{}
	}
	pos := q.Pos()
	x, y := pos.Add(pos.Sub(e.Analysis.EnemyCentroid)).Ints()
	return ipc.Move{X: x, Y: y}
}
