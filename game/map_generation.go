package game

import (
	"github.com/ojrac/opensimplex-go"
)

// terrainThreshold tunes how much of the noise field solidifies into
// blocking terrain.
const terrainThreshold = 0.55

// GenerateTerrain scatters blocking terrain over the grid from a seeded noise
// field. The two spawn bands along the low and high Z edges stay clear so
// both teams can always deploy and reach each other.
func GenerateTerrain(state *BattleState, seed int64) {
	noise := opensimplex.New(seed)
	size := float64(state.GridSize)
	for x := 0; x < state.GridSize; x++ {
		for z := 0; z < state.GridSize; z++ {
			if z < 2 || z >= state.GridSize-2 {
				continue
			}
			value := noise.Eval2(float64(x)*4/size, float64(z)*4/size)
			if value > terrainThreshold {
				state.AddTerrain(GridPos{X: x, Z: z})
			}
		}
	}
}
