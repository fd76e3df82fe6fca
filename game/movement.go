package game

import (
	"math"

	"github.com/memmaker/skirmish/engine/path"
)

// gridPather feeds the movement search. Expansion is cardinal only: empty and
// friendly-occupied tiles can be traversed, terrain and enemy-occupied tiles
// stop expansion entirely.
type gridPather struct {
	state *BattleState
	unit  *UnitInstance
}

func (p *gridPather) GetNeighbors(node GridPos) []GridPos {
	result := make([]GridPos, 0, 4)
	for _, offset := range CardinalNeighbors {
		tile := node.Add(offset)
		if !p.state.Contains(tile.X, tile.Z) || p.state.IsTerrain(tile.X, tile.Z) {
			continue
		}
		if occupant := p.state.UnitAt(tile.X, tile.Z); occupant != nil && occupant.IsEnemyOf(p.unit) {
			continue
		}
		result = append(result, tile)
	}
	return result
}

func (p *gridPather) GetCost(currentNode, neighbor GridPos) float64 {
	return 1
}

func NewPather(state *BattleState, unit *UnitInstance) *gridPather {
	return &gridPather{state: state, unit: unit}
}

func moveOrigin(unit *UnitInstance, from []GridPos) GridPos {
	if len(from) > 0 {
		return from[0]
	}
	return unit.Position
}

// GetValidMoveTiles returns every tile the unit can end its move on, searching
// outward from its (possibly hypothetical) position up to MoveRange steps.
// Friendly-occupied tiles can be passed through but not stopped on.
func GetValidMoveTiles(state *BattleState, unit *UnitInstance, from ...GridPos) []GridPos {
	origin := moveOrigin(unit, from)
	dist, _ := path.Dijkstra[GridPos](path.NewNode(origin), float64(unit.MoveRange), NewPather(state, unit))
	valid := make([]GridPos, 0, len(dist))
	for x := 0; x < state.GridSize; x++ {
		for z := 0; z < state.GridSize; z++ {
			node := GridPos{X: x, Z: z}
			if node == origin {
				continue
			}
			if _, reached := dist[node]; !reached {
				continue
			}
			if state.UnitAt(node.X, node.Z) != nil {
				continue
			}
			valid = append(valid, node)
		}
	}
	return valid
}

// GetPathToTarget reconstructs one shortest cardinal path from the search's
// parent pointers. An unreachable target yields the degenerate direct pair,
// which callers must treat as "no real path".
func GetPathToTarget(state *BattleState, unit *UnitInstance, from, to GridPos) []GridPos {
	if from == to {
		return []GridPos{from}
	}
	_, prev := path.Dijkstra[GridPos](path.NewNode(from), math.MaxFloat64, NewPather(state, unit))
	if _, reachable := prev[to]; !reachable {
		return []GridPos{from, to}
	}
	pathToTarget := make([]GridPos, 0)
	current := to
	for {
		pathToTarget = append(pathToTarget, current)
		if current == from {
			break
		}
		current = prev[current]
	}
	// built back to front
	for i, j := 0, len(pathToTarget)-1; i < j; i, j = i+1, j-1 {
		pathToTarget[i], pathToTarget[j] = pathToTarget[j], pathToTarget[i]
	}
	return pathToTarget
}

// IsReachable reports whether a real cardinal path to the target exists under
// the movement blocking rules. Callers must check this before trusting the
// degenerate fallback of GetPathToTarget.
func IsReachable(state *BattleState, unit *UnitInstance, from, to GridPos) bool {
	if from == to {
		return true
	}
	dist, _ := path.Dijkstra[GridPos](path.NewNode(from), math.MaxFloat64, NewPather(state, unit))
	_, reachable := dist[to]
	return reachable
}
