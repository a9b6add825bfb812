package input

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// patternFunc computes the raw (pre-strength, pre-noise) current for every
// neuron at the given simulation time, using r for any pattern-intrinsic
// randomness.
type patternFunc func(r *rand.Rand, t float64, n int) []float64

// bernoulli reports a true/false draw with probability p, via
// gonum/stat/distuv rather than a hand-rolled r.Float64() < p comparison.
func bernoulli(r *rand.Rand, p float64) bool {
	return distuv.Bernoulli{P: p, Src: r}.Rand() == 1
}

// uniform draws from U(lo, hi) via gonum/stat/distuv.
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: r}.Rand()
}

var patterns = map[string]patternFunc{
	PatternNone:       generateNone,
	PatternRandom:     generateRandom,
	PatternPoisson:    generatePoisson,
	PatternRhythmic:   generateRhythmic,
	PatternPulseTrain: generatePulseTrain,
	PatternWave:       generateWave,
	PatternBurst:      generateBurst,
}

// Config controls a Generator's pattern selection and post-processing, per
// spec.md §4.6's inputStrength/noiseLevel and SPEC_FULL.md's supplemented
// explicit mini-event controls.
type Config struct {
	Pattern     string // one of the Pattern* constants; unrecognized names behave as PatternNone
	Strength    float64
	NoiseLevel  float64 // Gaussian noise stddev = NoiseLevel * 10 pA
	MiniRate    float64 // per-neuron, per-step probability of a mini-event; 0 disables
	MiniMin     float64 // pA
	MiniMax     float64 // pA
}

// DefaultConfig returns the pattern-disabled, noise-free, mini-event-enabled
// baseline described in spec.md §4.6.
func DefaultConfig() Config {
	return Config{
		Pattern:    PatternNone,
		Strength:   1.0,
		NoiseLevel: 0,
		MiniRate:   DefaultMiniRate,
		MiniMin:    DefaultMiniMin,
		MiniMax:    DefaultMiniMax,
	}
}

// Generator produces injected-current vectors for a Network-sized
// population. It holds no simulation state of its own beyond its Config;
// all time-dependence is a pure function of the (time, n) arguments passed
// to Generate.
type Generator struct {
	Config Config
}

// NewGenerator constructs a Generator with cfg.
func NewGenerator(cfg Config) *Generator {
	return &Generator{Config: cfg}
}

// Generate computes the length-n injected-current vector (in pA) for
// simulation time t, applying pattern generation, global strength scaling,
// Gaussian noise, and miniature-event currents in that order, per
// spec.md §4.6. An unrecognized pattern name yields a zero vector rather
// than an error, per spec.md §6's in-band-failure propagation policy.
func (g *Generator) Generate(r *rand.Rand, t float64, n int) []float64 {
	fn, ok := patterns[g.Config.Pattern]
	if !ok {
		fn = generateNone
	}

	currents := fn(r, t, n)
	for i := range currents {
		currents[i] *= g.Config.Strength
	}

	if g.Config.NoiseLevel > 0 {
		noise := distuv.Normal{Mu: 0, Sigma: g.Config.NoiseLevel * noiseStdDevScale, Src: r}
		for i := range currents {
			currents[i] += noise.Rand()
		}
	}

	if g.Config.MiniRate > 0 {
		for i := range currents {
			if bernoulli(r, g.Config.MiniRate) {
				currents[i] += uniform(r, g.Config.MiniMin, g.Config.MiniMax)
			}
		}
	}

	return currents
}

func generateNone(_ *rand.Rand, _ float64, n int) []float64 {
	return make([]float64, n)
}

func generateRandom(r *rand.Rand, _ float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if bernoulli(r, 0.1) {
			out[i] = uniform(r, 0, 50)
		}
	}
	return out
}

func generatePoisson(r *rand.Rand, _ float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if bernoulli(r, 0.05) {
			out[i] = uniform(r, 20, 50)
		}
	}
	return out
}

func generateRhythmic(_ *rand.Rand, t float64, n int) []float64 {
	out := make([]float64, n)
	if math.Sin(0.02*t) > 0.5 {
		for i := 0; i < n && i < 2; i++ {
			out[i] = 40
		}
	}
	return out
}

func generatePulseTrain(_ *rand.Rand, t float64, n int) []float64 {
	out := make([]float64, n)
	phase := math.Mod(t, 100)
	if phase < 5 {
		for i := 0; i < n && i < 3; i++ {
			out[i] = 60
		}
	}
	return out
}

func generateWave(_ *rand.Rand, t float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		v := math.Sin(0.01*t + float64(i)*math.Pi/float64(n))
		if v > 0 {
			out[i] = v * 30
		}
	}
	return out
}

func generateBurst(_ *rand.Rand, t float64, n int) []float64 {
	out := make([]float64, n)
	phase := math.Mod(t, 500)
	if phase < 50 && n > 0 {
		out[0] = 80
	}
	return out
}
