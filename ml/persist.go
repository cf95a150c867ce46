package ml

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// networkData is the on-disk form: the topology followed by the Dump order
// weights.
type networkData struct {
	Topology Topology
	Weights  []float64
}

// Encode writes the topology and weights to w as gob.
func (nw *NeuralNetwork) Encode(w io.Writer) error {
	return gob.NewEncoder(w).Encode(networkData{Topology: nw.Topology, Weights: nw.Dump()})
}

// Decode reads what Encode wrote. The stored topology must match the network's
// own; nothing is overwritten otherwise.
func (nw *NeuralNetwork) Decode(r io.Reader) error {
	var loaded networkData
	if err := gob.NewDecoder(r).Decode(&loaded); err != nil {
		return fmt.Errorf("failed to decode gob stream: %w", err)
	}

	// --- VALIDATION STEP ---
	if loaded.Topology != nw.Topology {
		return fmt.Errorf("%w: architecture mismatch: network is %s, model file is %s",
			ErrDimensionMismatch, nw.Topology, loaded.Topology)
	}

	// --- APPLICATION STEP ---
	return nw.Load(loaded.Weights)
}

// SaveToFile saves the topology and weights to filename.
func (nw *NeuralNetwork) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := nw.Encode(file); err != nil {
		file.Close()
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return file.Close()
}

// LoadFromFile restores weights saved by SaveToFile into a network of the same
// topology.
func (nw *NeuralNetwork) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := nw.Decode(file); err != nil {
		return fmt.Errorf("load %s: %w", filename, err)
	}
	return nil
}
