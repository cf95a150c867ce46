package ml

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Process-wide generator used when a network is built without WithSeed or
// WithRand. Nil until SetSeed is called, in which case the runtime-seeded
// top-level math/rand/v2 source is used.
var (
	defaultMu  sync.Mutex
	defaultRng *rand.Rand
)

// SetSeed installs a process-wide generator seeded with seed. Networks created
// afterwards without their own generator draw from it, which makes a whole
// program reproducible from a single call at startup.
func SetSeed(seed uint64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRng = newSeededRand(seed)
}

// Seeded reports whether SetSeed has been called.
func Seeded() bool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRng != nil
}

func newSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// InitializeWeights fills every weight, bias rows included, with
// U[0,1) * sqrt(2 / fanIn). fanIn is the input count for the first stage and
// the hidden width for every later one (He initialization, paired with the
// leaky rectifier).
func (nw *NeuralNetwork) InitializeWeights(rng *rand.Rand) {
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	} else {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		if defaultRng != nil {
			draw = defaultRng.Float64
		}
	}

	for _, layer := range nw.Layers {
		heCoefficient := math.Sqrt(2.0 / float64(layer.FanIn()))
		layer.Weights.Randomize(draw, heCoefficient)
	}
}

// Reinitialize draws a fresh set of weights in place. Options other than the
// generator ones are ignored.
func (nw *NeuralNetwork) Reinitialize(opts ...Option) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	nw.InitializeWeights(cfg.rng)
}
