package ml

import "fmt"

// NumWeights is the length of Dump's output.
func (nw *NeuralNetwork) NumWeights() int {
	total := 0
	for _, layer := range nw.Layers {
		total += len(layer.Weights.data)
	}
	return total
}

// Dump flattens every weight into one slice: the input stage row by row (bias
// row last), then each hidden stage, then the output stage. This order is the
// persistence format; a dump only fits a network of the same topology.
func (nw *NeuralNetwork) Dump() []float64 {
	out := make([]float64, 0, nw.NumWeights())
	for _, layer := range nw.Layers {
		out = append(out, layer.Weights.data...)
	}
	return out
}

// Load overwrites every weight from a slice in Dump order. On a length mismatch
// the network is left unchanged.
func (nw *NeuralNetwork) Load(weights []float64) error {
	if want := nw.NumWeights(); len(weights) != want {
		return fmt.Errorf("%w: got %d weights, network %s holds %d",
			ErrDimensionMismatch, len(weights), nw.Topology, want)
	}
	offset := 0
	for _, layer := range nw.Layers {
		offset += copy(layer.Weights.data, weights[offset:])
	}
	return nil
}
