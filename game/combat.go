package game

// MeleeDamageMultiplier scales base attack for melee hits. Ranged attacks use
// base attack unmodified. Defender state does not mitigate damage here; the
// conceal override lives at the executor layer.
const MeleeDamageMultiplier = 2

// AttackTile is one candidate target tile. Callers must filter on HasLOS.
type AttackTile struct {
	Pos    GridPos
	HasLOS bool
}

func attackOrigin(unit *UnitInstance, from []GridPos) GridPos {
	if len(from) > 0 {
		return from[0]
	}
	return unit.Position
}

// GetValidAttackTiles computes the targeting shape for a unit attacking from
// its (possibly hypothetical) position. Melee covers the eight adjacent
// tiles, with diagonals additionally needing line of sight so nobody swings
// through a blocking corner. Ranged covers every tile in sight except the
// adjacent ones: no point-blank shots.
func GetValidAttackTiles(state *BattleState, unit *UnitInstance, from ...GridPos) []AttackTile {
	origin := attackOrigin(unit, from)
	result := make([]AttackTile, 0)
	if unit.Style == StyleMelee {
		for _, tile := range GetAdjacentTiles(state, origin.X, origin.Z) {
			hasLOS := true
			if IsDiagonal(origin, tile) {
				hasLOS = HasLineOfSight(state, origin, tile, unit.UnitID())
			}
			result = append(result, AttackTile{Pos: tile, HasLOS: hasLOS})
		}
		return result
	}
	for _, tile := range GetTilesInLOS(state, origin, true, unit.UnitID()) {
		result = append(result, AttackTile{Pos: tile, HasLOS: true})
	}
	return result
}

// GetAttackableEnemies filters live enemies standing on a valid, LOS-confirmed
// target tile.
func GetAttackableEnemies(state *BattleState, unit *UnitInstance, from ...GridPos) []*UnitInstance {
	origin := attackOrigin(unit, from)
	result := make([]*UnitInstance, 0)
	for _, tile := range GetValidAttackTiles(state, unit, origin) {
		if !tile.HasLOS {
			continue
		}
		occupant := state.UnitAt(tile.Pos.X, tile.Pos.Z)
		if occupant != nil && occupant.IsEnemyOf(unit) {
			result = append(result, occupant)
		}
	}
	return result
}

// GetHealableAllies filters live allies standing on a valid target tile that
// are missing health. Self-targeting is always allowed, no sight check
// needed, and healing requires the healer to actually have a heal amount.
func GetHealableAllies(state *BattleState, unit *UnitInstance, from ...GridPos) []*UnitInstance {
	if unit.HealAmount <= 0 {
		return nil
	}
	origin := attackOrigin(unit, from)
	result := make([]*UnitInstance, 0)
	if unit.IsActive() && unit.Health < unit.MaxHealth {
		result = append(result, unit)
	}
	for _, tile := range GetValidAttackTiles(state, unit, origin) {
		if !tile.HasLOS {
			continue
		}
		occupant := state.UnitAt(tile.Pos.X, tile.Pos.Z)
		if occupant == nil || occupant == unit || occupant.IsEnemyOf(unit) {
			continue
		}
		if occupant.Health < occupant.MaxHealth {
			result = append(result, occupant)
		}
	}
	return result
}

func CalculateDamage(attacker, defender *UnitInstance) int {
	if attacker.Style == StyleMelee {
		return attacker.Attack * MeleeDamageMultiplier
	}
	return attacker.Attack
}

// ApplyHealing restores the lesser of the healer's heal amount and the
// target's missing health and returns the amount actually applied.
func ApplyHealing(healer, target *UnitInstance) int {
	missing := target.MaxHealth - target.Health
	healed := minInt(healer.HealAmount, missing)
	if healed < 0 {
		healed = 0
	}
	target.Health += healed
	return healed
}

// CheckWinCondition reports whether the match is over. One team left standing
// wins; nobody left standing is a draw with an empty winner.
func CheckWinCondition(state *BattleState) (bool, string) {
	teamsAlive := make(map[string]bool)
	for _, unit := range state.Units {
		if unit.IsActive() {
			teamsAlive[unit.Team] = true
		}
	}
	if len(teamsAlive) > 1 {
		return false, ""
	}
	for team := range teamsAlive {
		return true, team
	}
	return true, "" // draw
}
