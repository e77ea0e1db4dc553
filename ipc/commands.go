package ipc

import (
	"fmt"
	"strconv"
	"strings"
)

// Structure names accepted by BUILD; they must match the referee exactly.
const (
	BuildTower          = "TOWER"
	BuildMine           = "MINE"
	BuildKnightBarracks = "BARRACKS-KNIGHT"
	BuildArcherBarracks = "BARRACKS-ARCHER"
	BuildGiantBarracks  = "BARRACKS-GIANT"
)

// Command is a single output line.
type Command interface {
	String() string
}

// Wait leaves the queen where she is.
type Wait struct{}

func (Wait) String() string { return "WAIT" }

// Move sends the queen toward a point.
type Move struct {
	X int
	Y int
}

func (m Move) String() string { return fmt.Sprintf("MOVE %d %d", m.X, m.Y) }

// Build walks the queen to a site and builds on it once she touches it.
type Build struct {
	SiteID    int
	Structure string
}

func (b Build) String() string { return fmt.Sprintf("BUILD %d %s", b.SiteID, b.Structure) }

// Train starts a batch at every listed barracks; an empty list trains nothing.
type Train struct {
	SiteIDs []int
}

func (t Train) String() string {
	if len(t.SiteIDs) == 0 {
		return "TRAIN"
	}
	var sb strings.Builder
	sb.WriteString("TRAIN")
	for _, id := range t.SiteIDs {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

// TurnCommands is the full reply for one turn.
type TurnCommands struct {
	Queen Command
	Train Train
}

// Lines renders the reply, substituting WAIT for a missing queen command.
func (tc TurnCommands) Lines() [2]string {
	q := tc.Queen
	if q == nil {
		q = Wait{}
	}
	return [2]string{q.String(), tc.Train.String()}
}
