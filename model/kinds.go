package model

import "fmt"

// NoSite marks a queen that is not touching any site.
const NoSite = -1

// Owner is the wire-level owner tag shared by sites and units.
type Owner int

const (
	NoOwner  Owner = -1
	Friendly Owner = 0
	Enemy    Owner = 1
)

func (o Owner) String() string {
	switch o {
	case NoOwner:
		return "none"
	case Friendly:
		return "friendly"
	case Enemy:
		return "enemy"
	}
	return fmt.Sprintf("Owner(%d)", int(o))
}

// StructureKind is the wire-level structure tag of a site record.
type StructureKind int

const (
	NoStructureKind StructureKind = -1
	MineKind        StructureKind = 0
	TowerKind       StructureKind = 1
	BarracksKind    StructureKind = 2
)

func (k StructureKind) String() string {
	switch k {
	case NoStructureKind:
		return "none"
	case MineKind:
		return "mine"
	case TowerKind:
		return "tower"
	case BarracksKind:
		return "barracks"
	}
	return fmt.Sprintf("StructureKind(%d)", int(k))
}

// UnitKind is the wire-level unit tag. Barracks reuse the combat kinds to say
// which troop they train.
type UnitKind int

const (
	Queen  UnitKind = -1
	Knight UnitKind = 0
	Archer UnitKind = 1
	Giant  UnitKind = 2
)

func (k UnitKind) String() string {
	switch k {
	case Queen:
		return "queen"
	case Knight:
		return "knight"
	case Archer:
		return "archer"
	case Giant:
		return "giant"
	}
	return fmt.Sprintf("UnitKind(%d)", int(k))
}

// Structure is the decoded content of a site: exactly one of Tower, Mine,
// Barracks or NoStructure.
type Structure interface {
	structure()
}

type Tower struct {
	SiteID       int
	HP           int
	AttackRadius int
}

type Mine struct {
	SiteID  int
	Gold    int
	MaxSize int
	Income  int
}

// Maxed reports whether the mine already produces its maximum income.
func (m Mine) Maxed() bool { return m.Income == m.MaxSize }

// Upgradable reports whether another BUILD MINE would raise the income.
func (m Mine) Upgradable() bool { return m.MaxSize > m.Income }

type Barracks struct {
	SiteID   int
	Progress int // turns until the current batch is out; 0 when idle
	Trains   UnitKind
}

// Busy reports whether the barracks is mid-way through a batch.
func (b Barracks) Busy() bool { return b.Progress != 0 }

type NoStructure struct{}

func (Tower) structure()       {}
func (Mine) structure()        {}
func (Barracks) structure()    {}
func (NoStructure) structure() {}
