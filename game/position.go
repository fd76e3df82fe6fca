package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// GridPos is a tile coordinate on the battle grid.
type GridPos struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// ToKey canonicalizes the position to a "x,z" map key.
// Keys round-trip exactly through PosFromKey.
func (p GridPos) ToKey() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Z)
}

func PosFromKey(key string) (GridPos, bool) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return GridPos{}, false
	}
	x, errX := strconv.Atoi(parts[0])
	z, errZ := strconv.Atoi(parts[1])
	if errX != nil || errZ != nil {
		return GridPos{}, false
	}
	return GridPos{X: x, Z: z}, true
}

func (p GridPos) ToString() string {
	return fmt.Sprintf("(%d|%d)", p.X, p.Z)
}

func (p GridPos) Add(other GridPos) GridPos {
	return GridPos{X: p.X + other.X, Z: p.Z + other.Z}
}

func (p GridPos) Sub(other GridPos) GridPos {
	return GridPos{X: p.X - other.X, Z: p.Z - other.Z}
}

// ToTileCenter returns the center of the tile, treating each tile as a unit
// square whose corner sits on the integer lattice.
func (p GridPos) ToTileCenter() mgl64.Vec2 {
	return mgl64.Vec2{float64(p.X) + 0.5, float64(p.Z) + 0.5}
}

var CardinalNeighbors = []GridPos{
	{X: 1, Z: 0},
	{X: -1, Z: 0},
	{X: 0, Z: 1},
	{X: 0, Z: -1},
}

var AllNeighbors = []GridPos{
	{X: 1, Z: 0},
	{X: 1, Z: 1},
	{X: 0, Z: 1},
	{X: -1, Z: 1},
	{X: -1, Z: 0},
	{X: -1, Z: -1},
	{X: 0, Z: -1},
	{X: 1, Z: -1},
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func ManhattanDistance(a, b GridPos) int {
	return absInt(a.X-b.X) + absInt(a.Z-b.Z)
}

func ChebyshevDistance(a, b GridPos) int {
	return maxInt(absInt(a.X-b.X), absInt(a.Z-b.Z))
}

// IsAdjacent reports whether b is one of the eight tiles surrounding a.
func IsAdjacent(a, b GridPos) bool {
	return a != b && ChebyshevDistance(a, b) == 1
}

// IsDiagonal reports whether b is a diagonal neighbor of a.
func IsDiagonal(a, b GridPos) bool {
	return absInt(a.X-b.X) == 1 && absInt(a.Z-b.Z) == 1
}
