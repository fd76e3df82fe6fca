package game

// DefaultLoadouts is the stock three-unit squad every team fields when the
// caller provides no custom roster.
func DefaultLoadouts() []UnitDefinition {
	return []UnitDefinition{
		{
			ID:    0,
			Name:  "Soldier",
			Class: ClassSoldier,
			Style: StyleMelee,
			CoreStats: UnitCoreStats{
				MaxHealth:   100,
				Attack:      20,
				MoveRange:   4,
				AttackRange: 1,
				Speed:       4,
			},
		},
		{
			ID:    1,
			Name:  "Operator",
			Class: ClassOperator,
			Style: StyleRanged,
			CoreStats: UnitCoreStats{
				MaxHealth:   75,
				Attack:      20,
				MoveRange:   5,
				AttackRange: 10,
				Speed:       5,
			},
		},
		{
			ID:    2,
			Name:  "Medic",
			Class: ClassMedic,
			Style: StyleRanged,
			CoreStats: UnitCoreStats{
				MaxHealth:   75,
				Attack:      10,
				HealAmount:  25,
				MoveRange:   4,
				AttackRange: 8,
				Speed:       3,
			},
		},
	}
}

// SetupBattleState builds a fresh match: generated terrain and both teams'
// squads deployed on opposite edges of the grid.
func SetupBattleState(gridSize int, seed int64, loadouts []UnitDefinition) *BattleState {
	state := NewBattleState(gridSize)
	GenerateTerrain(state, seed)
	if len(loadouts) == 0 {
		loadouts = DefaultLoadouts()
	}
	deploy(state, TeamPlayerOne, loadouts, 0)
	deploy(state, TeamPlayerTwo, loadouts, gridSize-1)
	return state
}

func deploy(state *BattleState, team string, loadouts []UnitDefinition, row int) {
	spacing := state.GridSize / (len(loadouts) + 1)
	for i := range loadouts {
		def := loadouts[i]
		unit := NewUnitInstance(def.Name, team, &def)
		unit.Position = GridPos{X: spacing * (i + 1), Z: row}
		state.AddUnit(unit)
	}
}
