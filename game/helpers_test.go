package game

// testUnit builds a combatant with sane defaults for rule tests. Callers
// override the fields a test cares about.
func testUnit(name, team string, style CombatStyle, pos GridPos) *UnitInstance {
	return &UnitInstance{
		Name:         name,
		Team:         team,
		Class:        ClassSoldier,
		Style:        style,
		Position:     pos,
		Health:       100,
		MaxHealth:    100,
		Attack:       20,
		MoveRange:    4,
		AttackRange:  10,
		Speed:        4,
		CoveredTiles: make(map[string]bool),
	}
}

func openState(size int) *BattleState {
	return NewBattleState(size)
}
