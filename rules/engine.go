package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/sitewar/ipc"
)

// Engine runs compiled rules against one turn of state.
// Rules fire in priority order; exclusive rules block lower-priority rules
// in the same category, so each output line gets exactly one command.
type Engine struct {
	rules []*Rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled}, nil
}

// Rules returns the compiled rules in evaluation order.
func (e *Engine) Rules() []*Rule { return e.rules }

// Evaluate runs all rules against env and collects the turn's reply. Lines
// no rule filled fall back to WAIT and TRAIN.
func (e *Engine) Evaluate(env RuleEnv) ipc.TurnCommands {
	var out ipc.TurnCommands
	fired := make(map[string]bool) // category → exclusive rule already fired

	for _, r := range e.rules {
		if fired[r.Category] {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		cmd, err := r.Action(env)
		if err != nil {
			slog.Error("rule action error", "rule", r.Name, "error", err)
			continue
		}
		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category, "command", cmd)

		switch r.Category {
		case CategoryTraining:
			train, ok := cmd.(ipc.Train)
			if !ok {
				slog.Error("training rule returned a non-train command", "rule", r.Name, "command", cmd)
				continue
			}
			out.Train = train
		default:
			out.Queen = cmd
		}

		if r.Exclusive {
			fired[r.Category] = true
		}
	}

	if out.Queen == nil {
		logIdleDiagnostics(env)
		out.Queen = ipc.Wait{}
	}
	return out
}

// logIdleDiagnostics helps debug "why is the queen standing still?":
// dumps the inputs of the decision table when no queen rule fired.
func logIdleDiagnostics(env RuleEnv) {
	slog.Warn("idle diagnostics",
		"turn", env.Turn(),
		"gold", env.Gold(),
		"queenHP", env.QueenHP(),
		"danger", env.Danger(),
		"towers", env.TowerCount(),
		"knightBarracks", len(env.State.Own.KnightBarracks),
		"queenDistance", env.QueenDistance(),
	)
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Action == nil {
			return nil, fmt.Errorf("rule %q has no action", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
