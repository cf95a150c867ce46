package ml

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

type NeuralNetwork struct {
	Topology Topology
	Layers   []*Layer
	trainer  Trainer
}

// Option configures NewNetwork.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	trainer Trainer
}

// WithSeed draws the initial weights from a generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = newSeededRand(seed)
	}
}

// WithRand draws the initial weights from rng. The network does not keep it.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithTrainer sets the trainer behind Train. The default is NopTrainer.
func WithTrainer(t Trainer) Option {
	return func(c *config) {
		c.trainer = t
	}
}

// NewNetwork allocates a network of numLayers hidden layers, nodesPerLayer wide,
// between numInputs inputs and numOutputs outputs, and initializes its weights.
func NewNetwork(numInputs, numLayers, nodesPerLayer, numOutputs int, opts ...Option) (*NeuralNetwork, error) {
	topo := Topology{
		Inputs:        numInputs,
		Layers:        numLayers,
		NodesPerLayer: nodesPerLayer,
		Outputs:       numOutputs,
	}
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	cfg := config{trainer: NopTrainer{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	nw := &NeuralNetwork{
		Topology: topo,
		Layers:   make([]*Layer, topo.Layers+1),
		trainer:  cfg.trainer,
	}
	for i := range nw.Layers {
		rows, cols := topo.StageShape(i)
		nw.Layers[i] = &Layer{Weights: NewMatrix(rows, cols)}
	}

	nw.InitializeWeights(cfg.rng)
	return nw, nil
}

// -------- NEURAL NETWORK METHODS -------- //

// Forward propagates input through every stage and returns the output layer.
// Every stage, the output one included, goes through LeakyRelu. The network is
// only read, so Forward may run concurrently with itself.
func (nw *NeuralNetwork) Forward(input []float64) ([]float64, error) {
	if len(input) != nw.Topology.Inputs {
		return nil, fmt.Errorf("%w: input has %d values, network %s expects %d",
			ErrDimensionMismatch, len(input), nw.Topology, nw.Topology.Inputs)
	}

	activation := input
	for _, layer := range nw.Layers {
		next := make([]float64, layer.FanOut())
		MulVecTo(next, layer.Weights, activation)
		floats.Add(next, layer.Bias())
		applyLeakyRelu(next)
		activation = next
	}
	return activation, nil
}

// Predict runs Forward and returns the index of the largest output along with
// its value.
func (nw *NeuralNetwork) Predict(input []float64) (int, float64, error) {
	output, err := nw.Forward(input)
	if err != nil {
		return -1, 0, err
	}
	best := floats.MaxIdx(output)
	return best, output[best], nil
}

// Loss is the mean squared error between Forward(input) and target.
func (nw *NeuralNetwork) Loss(input, target []float64) (float64, error) {
	output, err := nw.Forward(input)
	if err != nil {
		return 0, err
	}
	if len(target) != len(output) {
		return 0, fmt.Errorf("%w: target has %d values, network %s produces %d",
			ErrDimensionMismatch, len(target), nw.Topology, len(output))
	}
	return MeanSquaredError(output, target)
}

// Train checks that inputs and targets pair up with the topology and hands them
// to the network's Trainer.
func (nw *NeuralNetwork) Train(inputs, targets [][]float64) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs but %d targets", ErrDimensionMismatch, len(inputs), len(targets))
	}
	for i := range inputs {
		if len(inputs[i]) != nw.Topology.Inputs {
			return fmt.Errorf("%w: input %d has %d values, want %d",
				ErrDimensionMismatch, i, len(inputs[i]), nw.Topology.Inputs)
		}
		if len(targets[i]) != nw.Topology.Outputs {
			return fmt.Errorf("%w: target %d has %d values, want %d",
				ErrDimensionMismatch, i, len(targets[i]), nw.Topology.Outputs)
		}
	}
	return nw.trainer.Train(nw, inputs, targets)
}
