package game

// GetCoverTiles is the set of tiles a unit threatens while covering. The
// shape is identical to its attack targeting shape.
func GetCoverTiles(state *BattleState, unit *UnitInstance, from ...GridPos) []GridPos {
	result := make([]GridPos, 0)
	for _, tile := range GetValidAttackTiles(state, unit, from...) {
		if !tile.HasLOS {
			continue
		}
		result = append(result, tile.Pos)
	}
	return result
}

// ActivateCover marks the unit as covering and records its threatened tiles.
func ActivateCover(state *BattleState, unit *UnitInstance) {
	unit.IsCovering = true
	unit.CoveredTiles = make(map[string]bool)
	for _, tile := range GetCoverTiles(state, unit) {
		unit.CoveredTiles[tile.ToKey()] = true
	}
}

func ActivateConceal(unit *UnitInstance) {
	unit.IsConcealed = true
}

// ConsumeConceal is the extension point for the "negate next hit" behavior.
// The core never consults the flag during damage application; an executor
// that wants negation calls this before applying damage.
func ConsumeConceal(unit *UnitInstance) bool {
	if !unit.IsConcealed {
		return false
	}
	unit.IsConcealed = false
	return true
}

// GetEnemyCoveringTile finds a live, currently covering enemy of the given
// unit whose threatened tiles contain (x,z). The execution layer uses this to
// decide whether a reaction fires after a command resolves.
func GetEnemyCoveringTile(state *BattleState, x, z int, forUnit *UnitInstance) *UnitInstance {
	key := GridPos{X: x, Z: z}.ToKey()
	for _, unit := range state.Units {
		if !unit.IsActive() || !unit.IsCovering || !unit.IsEnemyOf(forUnit) {
			continue
		}
		if unit.CoveredTiles[key] {
			return unit
		}
	}
	return nil
}
