package rules

import (
	"github.com/nstehr/sitewar/ipc"
)

func ActionPushTowers(env RuleEnv) (ipc.Command, error) {
	return env.PushTowers(), nil
}

func ActionPushTowersAggressively(env RuleEnv) (ipc.Command, error) {
	return env.PushTowersAggressively(), nil
}

func ActionPushMines(env RuleEnv) (ipc.Command, error) {
	return env.PushMines()
}

func ActionEarnMoney(env RuleEnv) (ipc.Command, error) {
	return env.EarnMoney()
}

func ActionDefend(env RuleEnv) (ipc.Command, error) {
	return env.Defend()
}

// BuildBarracks returns an action placing a knight barracks; a bold one
// settles for any runner-up site within reach.
func BuildBarracks(bold bool) ActionFunc {
	return func(env RuleEnv) (ipc.Command, error) {
		return env.BuildBarracks(bold), nil
	}
}

// ActionTrainKnights trains one batch at the barracks TrainingSite picks.
func ActionTrainKnights(env RuleEnv) (ipc.Command, error) {
	id, ok := env.TrainingSite()
	if !ok {
		return nil, errNoKnightBarracks
	}
	return ipc.Train{SiteIDs: []int{id}}, nil
}
