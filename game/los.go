package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// LOSEpsilon governs every floating point comparison in the sight rules to
// avoid tie-break flicker at tile boundaries.
const LOSEpsilon = 1e-7

type segmentIntersection int

const (
	intersectNone segmentIntersection = iota
	intersectInterior
	intersectCorner
)

// clipSegmentToTile clips the sightline against the unit square of a tile
// using parametric (Liang-Barsky) clipping and classifies the result. A
// degenerate clip interval means the segment only grazes a corner.
func clipSegmentToTile(start, end mgl64.Vec2, tile GridPos) segmentIntersection {
	d := end.Sub(start)
	minX, maxX := float64(tile.X), float64(tile.X)+1
	minZ, maxZ := float64(tile.Z), float64(tile.Z)+1

	p := [4]float64{-d.X(), d.X(), -d.Y(), d.Y()}
	q := [4]float64{start.X() - minX, maxX - start.X(), start.Y() - minZ, maxZ - start.Y()}

	tMin, tMax := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] > -LOSEpsilon && p[i] < LOSEpsilon {
			// parallel to this boundary, outside means no hit at all
			if q[i] < -LOSEpsilon {
				return intersectNone
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMax {
				tMax = t
			}
		}
	}
	if tMin > tMax+LOSEpsilon {
		return intersectNone
	}
	if tMax-tMin <= LOSEpsilon {
		return intersectCorner
	}
	return intersectInterior
}

// sideOfLine returns the cross product sign of the tile center relative to
// the sightline, positive on one side, negative on the other, near zero when
// the center sits exactly on the line.
func sideOfLine(start, end mgl64.Vec2, tile GridPos) float64 {
	d := end.Sub(start)
	c := tile.ToTileCenter().Sub(start)
	return d.X()*c.Y() - d.Y()*c.X()
}

func excluded(unitID uint64, excludeUnitID []uint64) bool {
	for _, id := range excludeUnitID {
		if id == unitID {
			return true
		}
	}
	return false
}

// blocksSight reports whether a tile stops a sightline, either through
// terrain or through a living unit standing on it.
func blocksSight(state *BattleState, tile GridPos, excludeUnitID []uint64) bool {
	if state.IsTerrain(tile.X, tile.Z) {
		return true
	}
	unit := state.UnitAt(tile.X, tile.Z)
	return unit != nil && !excluded(unit.UnitID(), excludeUnitID)
}

// HasLineOfSight traces the segment between the two tile centers. Any
// interior intersection with a blocking tile in between blocks sight. Corner
// grazes only block when the line grazes blocking tiles on both sides, or
// when a grazed blocker sits centered on the line itself; a single-sided
// graze lets sight peek past the obstacle corner.
func HasLineOfSight(state *BattleState, from, to GridPos, excludeUnitID ...uint64) bool {
	if from == to {
		return true
	}
	start := from.ToTileCenter()
	end := to.ToTileCenter()

	grazedLeft := false
	grazedRight := false

	for x := minInt(from.X, to.X); x <= maxInt(from.X, to.X); x++ {
		for z := minInt(from.Z, to.Z); z <= maxInt(from.Z, to.Z); z++ {
			tile := GridPos{X: x, Z: z}
			if tile == from || tile == to {
				continue
			}
			if !blocksSight(state, tile, excludeUnitID) {
				continue
			}
			switch clipSegmentToTile(start, end, tile) {
			case intersectInterior:
				return false
			case intersectCorner:
				side := sideOfLine(start, end, tile)
				if side > LOSEpsilon {
					grazedLeft = true
				} else if side < -LOSEpsilon {
					grazedRight = true
				} else {
					// blocker centered on the sightline
					return false
				}
			}
		}
	}
	return !(grazedLeft && grazedRight)
}

// GetAdjacentTiles returns the up-to-8 neighboring tiles that are in bounds
// and terrain-free.
func GetAdjacentTiles(state *BattleState, x, z int) []GridPos {
	result := make([]GridPos, 0, 8)
	origin := GridPos{X: x, Z: z}
	for _, offset := range AllNeighbors {
		tile := origin.Add(offset)
		if !state.Contains(tile.X, tile.Z) || state.IsTerrain(tile.X, tile.Z) {
			continue
		}
		result = append(result, tile)
	}
	return result
}

// GetTilesInLOS returns every terrain-free tile visible from the given
// position, optionally skipping the eight adjacent ones. One sight check per
// tile; fine for the board sizes we run.
func GetTilesInLOS(state *BattleState, from GridPos, excludeAdjacent bool, excludeUnitID ...uint64) []GridPos {
	result := make([]GridPos, 0)
	for x := 0; x < state.GridSize; x++ {
		for z := 0; z < state.GridSize; z++ {
			tile := GridPos{X: x, Z: z}
			if tile == from {
				continue
			}
			if state.IsTerrain(x, z) {
				continue
			}
			if excludeAdjacent && IsAdjacent(from, tile) {
				continue
			}
			if HasLineOfSight(state, from, tile, excludeUnitID...) {
				result = append(result, tile)
			}
		}
	}
	return result
}
