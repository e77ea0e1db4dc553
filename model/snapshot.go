package model

import "sort"

// TurnInput is one turn of referee records, already split into integers.
type TurnInput struct {
	Gold        int               `json:"gold"`
	TouchedSite int               `json:"touchedSite"`
	Sites       []StructureRecord `json:"sites"`
	Units       []UnitRecord      `json:"units"`
}

// StructureRecord is the raw per-turn state of one site. Param1 and Param2
// depend on Kind: mine income; tower hp and attack radius; barracks progress
// and trained unit kind.
type StructureRecord struct {
	SiteID      int           `json:"siteId"`
	Gold        int           `json:"gold"`
	MaxMineSize int           `json:"maxMineSize"`
	Kind        StructureKind `json:"kind"`
	Owner       Owner         `json:"owner"`
	Param1      int           `json:"param1"`
	Param2      int           `json:"param2"`
}

// Structure decodes the record into its typed variant.
func (r StructureRecord) Structure() Structure {
	switch r.Kind {
	case MineKind:
		return Mine{SiteID: r.SiteID, Gold: r.Gold, MaxSize: r.MaxMineSize, Income: r.Param1}
	case TowerKind:
		return Tower{SiteID: r.SiteID, HP: r.Param1, AttackRadius: r.Param2}
	case BarracksKind:
		return Barracks{SiteID: r.SiteID, Progress: r.Param1, Trains: UnitKind(r.Param2)}
	}
	return NoStructure{}
}

type UnitRecord struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Owner Owner    `json:"owner"`
	Kind  UnitKind `json:"kind"`
	HP    int      `json:"hp"`
}

type Unit struct {
	X    int
	Y    int
	Kind UnitKind
	HP   int
}

func (u Unit) Pos() Point { return Pt(u.X, u.Y) }

// Side is everything one player owns this turn.
type Side struct {
	Owner       Owner
	Queen       *Unit
	OwnedGold   int
	TouchedSite int

	Mines          map[int]Mine
	Towers         map[int]Tower
	KnightBarracks map[int]Barracks
	ArcherBarracks map[int]Barracks
	GiantBarracks  map[int]Barracks

	Knights []Unit
	Archers []Unit
	Giants  []Unit
}

func newSide(owner Owner) Side {
	return Side{
		Owner:          owner,
		TouchedSite:    NoSite,
		Mines:          make(map[int]Mine),
		Towers:         make(map[int]Tower),
		KnightBarracks: make(map[int]Barracks),
		ArcherBarracks: make(map[int]Barracks),
		GiantBarracks:  make(map[int]Barracks),
	}
}

func (s *Side) addStructure(st Structure) {
	switch v := st.(type) {
	case Mine:
		s.Mines[v.SiteID] = v
	case Tower:
		s.Towers[v.SiteID] = v
	case Barracks:
		switch v.Trains {
		case Knight:
			s.KnightBarracks[v.SiteID] = v
		case Archer:
			s.ArcherBarracks[v.SiteID] = v
		case Giant:
			s.GiantBarracks[v.SiteID] = v
		}
	case NoStructure:
	}
}

func (s *Side) addUnit(u Unit) {
	switch u.Kind {
	case Queen:
		q := u
		s.Queen = &q
	case Knight:
		s.Knights = append(s.Knights, u)
	case Archer:
		s.Archers = append(s.Archers, u)
	case Giant:
		s.Giants = append(s.Giants, u)
	}
}

// Barracks looks a site up across all three barracks maps.
func (s Side) Barracks(siteID int) (Barracks, bool) {
	if b, ok := s.KnightBarracks[siteID]; ok {
		return b, true
	}
	if b, ok := s.ArcherBarracks[siteID]; ok {
		return b, true
	}
	b, ok := s.GiantBarracks[siteID]
	return b, ok
}

// BarracksCount counts barracks of every troop kind.
func (s Side) BarracksCount() int {
	return len(s.KnightBarracks) + len(s.ArcherBarracks) + len(s.GiantBarracks)
}

// StructureSites returns the site id of every structure the side owns, in
// ascending order.
func (s Side) StructureSites() []int {
	ids := make([]int, 0, len(s.Mines)+len(s.Towers)+s.BarracksCount())
	for id := range s.Mines {
		ids = append(ids, id)
	}
	for id := range s.Towers {
		ids = append(ids, id)
	}
	for _, m := range []map[int]Barracks{s.KnightBarracks, s.ArcherBarracks, s.GiantBarracks} {
		for id := range m {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// CombatUnits returns knights, archers and giants together.
func (s Side) CombatUnits() []Unit {
	out := make([]Unit, 0, len(s.Knights)+len(s.Archers)+len(s.Giants))
	out = append(out, s.Knights...)
	out = append(out, s.Archers...)
	return append(out, s.Giants...)
}

// Income is the gold per turn of all mines.
func (s Side) Income() int {
	n := 0
	for _, m := range s.Mines {
		n += m.Income
	}
	return n
}

// Snapshot is the classified world for a single turn. It is rebuilt from
// scratch every turn and never mutated afterwards.
type Snapshot struct {
	Turn      int
	Own       Side
	Enemy     Side
	FreeSites []int
	ForMining map[int]int // gold left in the ground, per site
}

// NewSnapshot sorts one turn of records into the two sides.
func NewSnapshot(turn int, in TurnInput) Snapshot {
	snap := Snapshot{
		Turn:      turn,
		Own:       newSide(Friendly),
		Enemy:     newSide(Enemy),
		ForMining: make(map[int]int, len(in.Sites)),
	}
	snap.Own.OwnedGold = in.Gold
	snap.Own.TouchedSite = in.TouchedSite

	for _, rec := range in.Sites {
		snap.ForMining[rec.SiteID] = rec.Gold
		if rec.Kind == NoStructureKind {
			snap.FreeSites = append(snap.FreeSites, rec.SiteID)
			continue
		}
		side := &snap.Enemy
		if rec.Owner == Friendly {
			side = &snap.Own
		}
		side.addStructure(rec.Structure())
	}
	sort.Ints(snap.FreeSites)

	for _, u := range in.Units {
		side := &snap.Enemy
		if u.Owner == Friendly {
			side = &snap.Own
		}
		side.addUnit(Unit{X: u.X, Y: u.Y, Kind: u.Kind, HP: u.HP})
	}
	return snap
}
