package model

import (
	"math"
	"sort"

	"github.com/nstehr/sitewar/config"
)

// FireCondition says how many hit points a tower needs before its attack
// circle reaches the target site.
type FireCondition struct {
	SiteID   int
	NeededHP float64
}

// Site is the static part of a capturable location. FireTable is sorted
// ascending by NeededHP and only lists targets a tower could ever reach.
type Site struct {
	ID        int
	X         int
	Y         int
	Radius    int
	FireTable []FireCondition
}

func (s Site) Center() Point { return Pt(s.X, s.Y) }

// CurrentlyFiringAt lists the sites a tower at s with the given hp can hit,
// in FireTable order.
func (s Site) CurrentlyFiringAt(hp int) []int {
	if hp <= 0 {
		return nil
	}
	n := sort.Search(len(s.FireTable), func(i int) bool {
		return s.FireTable[i].NeededHP > float64(hp)
	})
	out := make([]int, n)
	for i := range n {
		out[i] = s.FireTable[i].SiteID
	}
	return out
}

// Map is the immutable per-game site table.
type Map struct {
	sites map[int]Site
	ids   []int
}

// NewMap copies sites and precomputes every fire table. The attack circle of
// a tower covers FireAreaPerHP units of area per hit point, so reaching a
// target at distance d from a site of radius r needs π(d²−r²)/FireAreaPerHP hp.
func NewMap(sites []Site, cfg config.Config) *Map {
	m := &Map{
		sites: make(map[int]Site, len(sites)),
		ids:   make([]int, 0, len(sites)),
	}
	for _, s := range sites {
		s.FireTable = nil
		m.sites[s.ID] = s
		m.ids = append(m.ids, s.ID)
	}
	sort.Ints(m.ids)

	for _, id := range m.ids {
		from := m.sites[id]
		var table []FireCondition
		for _, toID := range m.ids {
			if toID == id {
				continue
			}
			hp := NeededHP(from, m.sites[toID], cfg.FireAreaPerHP)
			if hp <= cfg.TowerMaxHP {
				table = append(table, FireCondition{SiteID: toID, NeededHP: hp})
			}
		}
		sort.SliceStable(table, func(i, j int) bool {
			return table[i].NeededHP < table[j].NeededHP
		})
		from.FireTable = table
		m.sites[id] = from
	}
	return m
}

// NeededHP is the tower hp at from whose attack circle reaches to's center.
// Targets already inside from's own radius need nothing.
func NeededHP(from, to Site, areaPerHP float64) float64 {
	d := Distance(from.Center(), to.Center())
	r := float64(from.Radius)
	return math.Max(0, math.Pi*(d*d-r*r)/areaPerHP)
}

// Site looks up a site by id.
func (m *Map) Site(id int) (Site, bool) {
	s, ok := m.sites[id]
	return s, ok
}

// IDs returns all site ids in ascending order.
func (m *Map) IDs() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

func (m *Map) Len() int { return len(m.ids) }
