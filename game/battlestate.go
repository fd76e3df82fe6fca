package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/util"
)

const (
	TeamPlayerOne = "player1"
	TeamPlayerTwo = "player2"
)

// ActionsPerTurn is how many commands a unit may spend during one open turn.
const ActionsPerTurn = 2

// BattleState is the single source of truth for one match. It is exclusively
// owned by the turn-processing loop and is never mutated concurrently.
type BattleState struct {
	GridSize int             `json:"gridSize"`
	Terrain  map[string]bool `json:"terrain"`
	Units    []*UnitInstance `json:"units"` // insertion order, not turn order

	CurrentUnitID    uint64 `json:"currentUnitId"`
	ActionsRemaining int    `json:"actionsRemaining"`

	IsGameOver bool   `json:"isGameOver"`
	Winner     string `json:"winner,omitempty"`
}

func NewBattleState(gridSize int) *BattleState {
	return &BattleState{
		GridSize: gridSize,
		Terrain:  make(map[string]bool),
		Units:    make([]*UnitInstance, 0),
	}
}

func (b *BattleState) Contains(x, z int) bool {
	return x >= 0 && z >= 0 && x < b.GridSize && z < b.GridSize
}

func (b *BattleState) AddTerrain(pos GridPos) {
	b.Terrain[pos.ToKey()] = true
}

func (b *BattleState) IsTerrain(x, z int) bool {
	return b.Terrain[GridPos{X: x, Z: z}.ToKey()]
}

// AddUnit registers a unit with the roster, assigning its battle-scoped ID
// and its loadout index, which is the deterministic initiative tiebreak.
func (b *BattleState) AddUnit(unit *UnitInstance) uint64 {
	unitID := uint64(len(b.Units))
	unit.SetUnitID(unitID)
	unit.LoadoutIndex = len(b.Units)
	b.Units = append(b.Units, unit)
	util.LogGameDebug(fmt.Sprintf("[BattleState] Added unit %s(%d) for %s", unit.Name, unitID, unit.Team))
	return unitID
}

func (b *BattleState) GetUnit(unitID uint64) (*UnitInstance, bool) {
	if unitID >= uint64(len(b.Units)) {
		return nil, false
	}
	return b.Units[unitID], true
}

// MustGetUnit is for callers that already validated the ID. A miss here is a
// caller bug and violates the determinism contract, so it fails loudly.
func (b *BattleState) MustGetUnit(unitID uint64) *UnitInstance {
	unit, exists := b.GetUnit(unitID)
	if !exists {
		panic(fmt.Sprintf("[BattleState] no unit with id %d", unitID))
	}
	return unit
}

func (b *BattleState) CurrentUnit() *UnitInstance {
	unit, exists := b.GetUnit(b.CurrentUnitID)
	if !exists {
		return nil
	}
	return unit
}

// UnitAt returns the living unit standing on the tile, or nil.
func (b *BattleState) UnitAt(x, z int) *UnitInstance {
	for _, unit := range b.Units {
		if !unit.IsActive() {
			continue
		}
		if unit.Position.X == x && unit.Position.Z == z {
			return unit
		}
	}
	return nil
}

func (b *BattleState) LivingUnits() []*UnitInstance {
	result := make([]*UnitInstance, 0, len(b.Units))
	for _, unit := range b.Units {
		if unit.IsActive() {
			result = append(result, unit)
		}
	}
	return result
}

func (b *BattleState) LivingUnitsOfTeam(team string) []*UnitInstance {
	result := make([]*UnitInstance, 0)
	for _, unit := range b.Units {
		if unit.IsActive() && unit.Team == team {
			result = append(result, unit)
		}
	}
	return result
}

func (b *BattleState) LivingEnemiesOf(unit *UnitInstance) []*UnitInstance {
	result := make([]*UnitInstance, 0)
	for _, other := range b.Units {
		if other.IsActive() && other.IsEnemyOf(unit) {
			result = append(result, other)
		}
	}
	return result
}

// IsWalkable reports whether a tile is in bounds, terrain-free and not
// occupied by a living unit.
func (b *BattleState) IsWalkable(x, z int) bool {
	return b.Contains(x, z) && !b.IsTerrain(x, z) && b.UnitAt(x, z) == nil
}
