package ml

import "fmt"

// LeakySlope scales negative pre-activations.
const LeakySlope = 0.1

// MaxWeights caps the number of float64 weights a single network may hold.
const MaxWeights = 1 << 30

// -------- TYPE DEFINITIONS -------- //

// Topology is the immutable shape of a network: Inputs features feed Layers
// hidden layers of NodesPerLayer nodes each, followed by Outputs outputs.
type Topology struct {
	Inputs        int
	Layers        int
	NodesPerLayer int
	Outputs       int
}

// Layer is one stage of the network: the weights from one layer of nodes to the
// next. The last row of Weights is the bias row.
type Layer struct {
	Weights *Matrix
}

// FanIn is the number of non-bias rows.
func (l *Layer) FanIn() int { return l.Weights.rows - 1 }

// FanOut is the number of nodes the stage produces.
func (l *Layer) FanOut() int { return l.Weights.cols }

// Bias returns the bias row.
func (l *Layer) Bias() []float64 { return l.Weights.Row(l.Weights.rows - 1) }

// ------- TOPOLOGY HELPERS ------- //

func (t Topology) String() string {
	return fmt.Sprintf("%d-%dx%d-%d", t.Inputs, t.Layers, t.NodesPerLayer, t.Outputs)
}

// Validate reports ErrInvalidTopology when any dimension is non-positive and
// ErrAllocationFailure when the weight tensor cannot be addressed.
func (t Topology) Validate() error {
	if t.Inputs < 1 || t.Layers < 1 || t.NodesPerLayer < 1 || t.Outputs < 1 {
		return fmt.Errorf("%w: %s: every dimension must be positive", ErrInvalidTopology, t)
	}
	if _, ok := t.numWeights(); !ok {
		return fmt.Errorf("%w: %s", ErrAllocationFailure, t)
	}
	return nil
}

// NumWeights is the length of the flat weight sequence for t, or 0 when t is
// invalid.
func (t Topology) NumWeights() int {
	if t.Inputs < 1 || t.Layers < 1 || t.NodesPerLayer < 1 || t.Outputs < 1 {
		return 0
	}
	n, ok := t.numWeights()
	if !ok {
		return 0
	}
	return n
}

// StageShape returns the rows (bias row included) and columns of stage i.
func (t Topology) StageShape(i int) (rows, cols int) {
	rows, cols = t.NodesPerLayer+1, t.NodesPerLayer
	if i == 0 {
		rows = t.Inputs + 1
	}
	if i == t.Layers {
		cols = t.Outputs
	}
	return rows, cols
}

// numWeights evaluates (I+1)*N + (N+1)*N*(L-1) + (N+1)*O without overflowing.
func (t Topology) numWeights() (int, bool) {
	terms := [][]int{
		{t.Inputs + 1, t.NodesPerLayer},
		{t.NodesPerLayer + 1, t.NodesPerLayer, t.Layers - 1},
		{t.NodesPerLayer + 1, t.Outputs},
	}
	total := 0
	for _, factors := range terms {
		n := 1
		for _, f := range factors {
			if f != 0 && n > MaxWeights/f {
				return 0, false
			}
			n *= f
		}
		if n > MaxWeights-total {
			return 0, false
		}
		total += n
	}
	return total, true
}

// -------- ACTIVATION -------- //

// LeakyRelu passes non-negative values through and scales negative ones by
// LeakySlope.
func LeakyRelu(x float64) float64 {
	if x < 0 {
		return x * LeakySlope
	}
	return x
}

func applyLeakyRelu(v []float64) {
	for i, x := range v {
		if x < 0 {
			v[i] = x * LeakySlope
		}
	}
}
