package rules

// DefaultRules returns the queen's decision table and the training rule.
// Queen rules are all exclusive in one category, so the first match by
// priority decides the turn. Early-game rules end with a catch-all, which is
// why the later rules never test EarlyGame() themselves.
func DefaultRules() []*Rule {
	var rules []*Rule
	queen := func(name string, priority int, cond string, action ActionFunc) {
		rules = append(rules, &Rule{
			Name:         name,
			Priority:     priority,
			Category:     CategoryQueen,
			Exclusive:    true,
			ConditionSrc: cond,
			Action:       action,
		})
	}

	// --- Early game ---

	queen("early-hurt-barracks", 1000,
		`EarlyGame() && QueenHurt() && !HasKnightBarracks() && CanAfford(1)`,
		BuildBarracks(false))
	queen("early-danger-push", 990,
		`EarlyGame() && InDanger() && Danger() < QueenHP()`,
		ActionPushTowers)
	queen("early-danger-defend", 980,
		`EarlyGame() && InDanger()`,
		ActionDefend)
	queen("early-income-barracks", 970,
		`EarlyGame() && HighIncome() && !HasKnightBarracks()`,
		BuildBarracks(false))
	queen("early-expand", 960,
		`EarlyGame()`,
		ActionEarnMoney)

	// --- Under attack ---

	queen("danger-barracks", 900,
		`InDanger() && CanAfford(1) && !HasKnightBarracks() && QueenHP() > Danger()`,
		BuildBarracks(true))
	queen("danger-defend", 890,
		`InDanger()`,
		ActionDefend)

	// --- Enemy army on the field ---

	queen("enemy-knights-push", 800,
		`EnemyHasKnights() || EnemyTrainingKnights()`,
		ActionPushTowersAggressively)

	// --- Enemy queen far away: grow ---

	queen("far-poor-mines", 700,
		`EnemyQueenFar() && !CanAfford(1)`,
		ActionPushMines)
	queen("far-barracks", 690,
		`EnemyQueenFar() && !HasKnightBarracks()`,
		BuildBarracks(false))
	queen("far-expand", 680,
		`EnemyQueenFar() && EnoughTowers()`,
		ActionEarnMoney)
	queen("far-mines", 670,
		`EnemyQueenFar()`,
		ActionPushMines)

	// --- Enemy queen close ---

	queen("close-defend", 600,
		`EnemyQueenTooClose()`,
		ActionDefend)

	// --- Middle distance ---

	queen("defended-poor-expand", 500,
		`EnoughTowers() && !CanAfford(1)`,
		ActionEarnMoney)
	queen("defended-barracks", 490,
		`EnoughTowers() && !HasKnightBarracks()`,
		BuildBarracks(false))
	queen("defended-expand", 480,
		`EnoughTowers()`,
		ActionEarnMoney)
	queen("push-towers", 400,
		`true`,
		ActionPushTowers)

	rules = append(rules, &Rule{
		Name:         "train-knights",
		Priority:     100,
		Category:     CategoryTraining,
		Exclusive:    true,
		ConditionSrc: `CanTrainKnights()`,
		Action:       ActionTrainKnights,
	})

	return rules
}
