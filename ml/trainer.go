package ml

// Trainer updates a network's weights in place from paired samples. Train has
// already checked that every input and target matches the topology.
type Trainer interface {
	Train(nw *NeuralNetwork, inputs, targets [][]float64) error
}

// NopTrainer leaves the weights untouched. It is the default until a real
// optimizer is supplied with WithTrainer.
type NopTrainer struct{}

func (NopTrainer) Train(*NeuralNetwork, [][]float64, [][]float64) error { return nil }

// TrainerFunc adapts a plain function to Trainer.
type TrainerFunc func(nw *NeuralNetwork, inputs, targets [][]float64) error

func (f TrainerFunc) Train(nw *NeuralNetwork, inputs, targets [][]float64) error {
	return f(nw, inputs, targets)
}
