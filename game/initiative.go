package game

// TurnThreshold is the accumulator value a unit must reach to take a turn.
const TurnThreshold = 10

// SelectNextUnit runs the speed-accumulator scheduler over all living units.
// If nobody qualifies yet, every living unit gains its effective speed until
// at least one does. Ties break on highest accumulator, then highest
// effective speed, then lowest loadout index, which keeps scheduling fully
// deterministic. The caller resets the winner's accumulator when its turn
// actually starts; the scheduler itself never does.
func SelectNextUnit(state *BattleState) *UnitInstance {
	living := state.LivingUnits()
	if len(living) == 0 {
		return nil
	}
	for !anyUnitReady(living) {
		progressed := false
		for _, unit := range living {
			if unit.EffectiveSpeed() > 0 {
				progressed = true
			}
			unit.Accumulator += unit.EffectiveSpeed()
		}
		if !progressed {
			panic("[SelectNextUnit] no living unit has positive effective speed")
		}
	}

	var best *UnitInstance
	for _, unit := range living {
		if unit.Accumulator < TurnThreshold {
			continue
		}
		if best == nil || schedulesBefore(unit, best) {
			best = unit
		}
	}
	return best
}

func anyUnitReady(units []*UnitInstance) bool {
	for _, unit := range units {
		if unit.Accumulator >= TurnThreshold {
			return true
		}
	}
	return false
}

func schedulesBefore(a, b *UnitInstance) bool {
	if a.Accumulator != b.Accumulator {
		return a.Accumulator > b.Accumulator
	}
	if a.EffectiveSpeed() != b.EffectiveSpeed() {
		return a.EffectiveSpeed() > b.EffectiveSpeed()
	}
	return a.LoadoutIndex < b.LoadoutIndex
}
