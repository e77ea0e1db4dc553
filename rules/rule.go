package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/sitewar/ipc"
)

// ActionFunc produces the command for a rule whose condition is true.
// Training rules must return an ipc.Train.
type ActionFunc func(env RuleEnv) (ipc.Command, error)

// Rule categories. Each one fills a single output line per turn.
const (
	CategoryQueen    = "queen"
	CategoryTraining = "training"
)

// Rule is the atomic unit of bot behavior: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive
// to keep one command per output line.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // output line the rule fills
	Exclusive    bool        // if true, blocks lower-priority rules in same category
	ConditionSrc string      // expr source (preserved for logging and tests)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
