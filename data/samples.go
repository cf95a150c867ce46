package data

import "math/rand/v2"

// SquaresBatch draws n inputs uniformly from [-spread, spread) and pairs each
// with its square.
func SquaresBatch(rng *rand.Rand, n int, spread float64) (inputs, targets [][]float64) {
	inputs = make([][]float64, n)
	targets = make([][]float64, n)
	for i := range inputs {
		x := rng.Float64()*spread*2 - spread
		inputs[i] = []float64{x}
		targets[i] = []float64{x * x}
	}
	return inputs, targets
}

// SampleGrid lists the (x, y) coordinates of a w x h grid, row by row.
func SampleGrid(w, h int) [][]float64 {
	coords := make([][]float64, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coords = append(coords, []float64{float64(x), float64(y)})
		}
	}
	return coords
}
