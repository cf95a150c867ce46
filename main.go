package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/b0tShaman/feedforward/data"
	. "github.com/b0tShaman/feedforward/ml"
)

// exampleConfig holds everything a driver run needs.
type exampleConfig struct {
	Example     string
	Seed        uint64
	Batches     int
	BatchSize   int
	Spread      float64
	Layers      int
	Nodes       int
	Width       int
	Height      int
	Scale       int
	ImagePath   string
	WeightsPath string
}

func parseFlags(args []string) (exampleConfig, error) {
	var cfg exampleConfig
	fs := flag.NewFlagSet("feedforward", flag.ContinueOnError)
	fs.StringVar(&cfg.Example, "example", "squares", "example to run: squares or draw")
	fs.Uint64Var(&cfg.Seed, "seed", 10, "seed for weights and training data")
	fs.IntVar(&cfg.Batches, "batches", 10000, "number of training batches")
	fs.IntVar(&cfg.BatchSize, "batch-size", 20, "samples per batch")
	fs.Float64Var(&cfg.Spread, "spread", 100, "squares inputs are drawn from [-spread, spread)")
	fs.IntVar(&cfg.Layers, "layers", 3, "hidden layers")
	fs.IntVar(&cfg.Nodes, "nodes", 10, "nodes per hidden layer")
	fs.IntVar(&cfg.Width, "width", 32, "draw: sampled grid width")
	fs.IntVar(&cfg.Height, "height", 32, "draw: sampled grid height")
	fs.IntVar(&cfg.Scale, "scale", 4, "draw: upscale factor of the written image")
	fs.StringVar(&cfg.ImagePath, "out", "network.bmp", "draw: output image (.bmp or .png)")
	fs.StringVar(&cfg.WeightsPath, "weights", "", "load weights from this file if it exists and save them after the run")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.Example != "squares" && cfg.Example != "draw":
		return cfg, fmt.Errorf("unknown example %q", cfg.Example)
	case cfg.Batches < 0, cfg.BatchSize < 1:
		return cfg, errors.New("batches must be >= 0 and batch-size >= 1")
	case cfg.Width < 1, cfg.Height < 1, cfg.Scale < 1:
		return cfg, errors.New("width, height and scale must be positive")
	}
	return cfg, nil
}

// -------- MAIN -------- //
func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	switch cfg.Example {
	case "squares":
		err = runSquares(cfg)
	case "draw":
		err = runDraw(cfg)
	}
	if err != nil {
		log.Fatalf("%s example failed: %v", cfg.Example, err)
	}
}

// runSquares teaches a 1-input network the square function and prints how far
// it is from x*x on ten fresh samples.
func runSquares(cfg exampleConfig) error {
	nw, err := NewNetwork(1, cfg.Layers, cfg.Nodes, 1, WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	if err := loadWeights(nw, cfg.WeightsPath); err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	fmt.Printf("Network %s, %d weights\n", nw.Topology, nw.NumWeights())
	fmt.Print("Beginning Training... ")
	for i := 0; i < cfg.Batches; i++ {
		inputs, targets := data.SquaresBatch(rng, cfg.BatchSize, cfg.Spread)
		if err := nw.Train(inputs, targets); err != nil {
			return err
		}
	}
	fmt.Println("Done!")

	inputs, targets := data.SquaresBatch(rng, 10, cfg.Spread)
	report, err := evaluate(nw, inputs, targets)
	if err != nil {
		return err
	}
	fmt.Print(report)
	return saveWeights(nw, cfg.WeightsPath)
}

// runDraw fits a (x, y) -> RGB network to a synthetic gradient and writes what
// the network draws.
func runDraw(cfg exampleConfig) error {
	nw, err := NewNetwork(2, cfg.Layers, cfg.Nodes, 3, WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	if err := loadWeights(nw, cfg.WeightsPath); err != nil {
		return err
	}

	coords := data.SampleGrid(cfg.Width, cfg.Height)
	targets := make([][]float64, len(coords))
	for i, c := range coords {
		targets[i] = gradientColor(c[0], c[1], cfg.Width, cfg.Height)
	}

	fmt.Printf("Network %s, %d weights\n", nw.Topology, nw.NumWeights())
	fmt.Print("Beginning Training... ")
	for i := 0; i < cfg.Batches; i++ {
		start := (i * cfg.BatchSize) % len(coords)
		end := min(start+cfg.BatchSize, len(coords))
		if err := nw.Train(coords[start:end], targets[start:end]); err != nil {
			return err
		}
	}
	fmt.Println("Done!")

	loss, err := meanLoss(nw, coords, targets)
	if err != nil {
		return err
	}
	fmt.Printf("Mean loss over %d pixels: %.4f\n", len(coords), loss)

	img, err := data.RenderImage(nw, cfg.Width, cfg.Height, cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	if err != nil {
		return err
	}
	if err := data.SaveImage(cfg.ImagePath, img); err != nil {
		return err
	}
	fmt.Println("Image written to", cfg.ImagePath)
	return saveWeights(nw, cfg.WeightsPath)
}

// gradientColor is the target picture: red grows left to right, green top to
// bottom, blue along the diagonal.
func gradientColor(x, y float64, w, h int) []float64 {
	fx := x / math.Max(1, float64(w-1))
	fy := y / math.Max(1, float64(h-1))
	return []float64{255 * fx, 255 * fy, 255 * (fx + fy) / 2}
}

// evaluate formats one line per sample followed by the mean loss.
func evaluate(nw *NeuralNetwork, inputs, targets [][]float64) (string, error) {
	var sb strings.Builder
	for i, in := range inputs {
		out, err := nw.Forward(in)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "Input: %.4f\tExpected Output: %.4f\tActual Output: %.4f\tDifference: %f\n",
			in[0], targets[i][0], out[0], out[0]-targets[i][0])
	}
	loss, err := meanLoss(nw, inputs, targets)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&sb, "Mean loss: %.4f\n", loss)
	return sb.String(), nil
}

func meanLoss(nw *NeuralNetwork, inputs, targets [][]float64) (float64, error) {
	if len(inputs) == 0 {
		return 0, nil
	}
	total := 0.0
	for i := range inputs {
		loss, err := nw.Loss(inputs[i], targets[i])
		if err != nil {
			return 0, err
		}
		total += loss
	}
	return total / float64(len(inputs)), nil
}

// Auto-Load weights if they exist
func loadWeights(nw *NeuralNetwork, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	fmt.Println("Found existing model. Loading weights...")
	if err := nw.LoadFromFile(path); err != nil {
		fmt.Printf("Model mismatch (%v). Starting from fresh weights.\n", err)
		return nil
	}
	fmt.Println("Weights loaded successfully.")
	return nil
}

func saveWeights(nw *NeuralNetwork, path string) error {
	if path == "" {
		return nil
	}
	fmt.Println("Saving model to", path)
	return nw.SaveToFile(path)
}
