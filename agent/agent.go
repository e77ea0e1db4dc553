package agent

import (
	"errors"
	"log/slog"

	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/ipc"
	"github.com/nstehr/sitewar/model"
	"github.com/nstehr/sitewar/rules"
)

// Recorder keeps a copy of every game the agent plays.
type Recorder interface {
	RecordSetup(sites []model.Site) error
	RecordTurn(turn int, in model.TurnInput, tc ipc.TurnCommands) error
}

// Agent owns the decision-making for a single game. Only the map and the
// turn counter outlive a turn.
type Agent struct {
	Engine   *rules.Engine
	Config   config.Config
	Recorder Recorder // optional

	sites *model.Map
	turn  int
}

func New(engine *rules.Engine, cfg config.Config) *Agent {
	return &Agent{Engine: engine, Config: cfg}
}

// Turn is the number of the last turn handled; the first turn is 1.
func (a *Agent) Turn() int { return a.turn }

// HandleSetup precomputes the map and its fire tables.
func (a *Agent) HandleSetup(sites []model.Site) error {
	a.sites = model.NewMap(sites, a.Config)
	slog.Info("map ready", "sites", a.sites.Len())

	if a.Recorder != nil {
		if err := a.Recorder.RecordSetup(sites); err != nil {
			slog.Warn("record setup failed", "error", err)
		}
	}
	return nil
}

func (a *Agent) HandleTurn(in model.TurnInput) (ipc.TurnCommands, error) {
	if a.sites == nil {
		return ipc.TurnCommands{}, errors.New("turn received before map setup")
	}
	a.turn++

	snap := model.NewSnapshot(a.turn, in)
	env := rules.NewEnv(a.sites, snap, a.Config)
	tc := a.Engine.Evaluate(env)
	lines := tc.Lines()

	slog.Info("turn decided",
		"turn", a.turn,
		"gold", snap.Own.OwnedGold,
		"queenHP", env.QueenHP(),
		"danger", env.Danger(),
		"mines", len(snap.Own.Mines),
		"towers", len(snap.Own.Towers),
		"barracks", snap.Own.BarracksCount(),
		"enemyKnights", len(snap.Enemy.Knights),
		"queen", lines[0],
		"train", lines[1],
	)

	if a.Recorder != nil {
		if err := a.Recorder.RecordTurn(a.turn, in, tc); err != nil {
			slog.Warn("record turn failed", "turn", a.turn, "error", err)
		}
	}
	return tc, nil
}
