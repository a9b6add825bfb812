package topology

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/SynapticNetworks/sandbox-engine/network"
	"github.com/SynapticNetworks/sandbox-engine/neuron"
	"github.com/SynapticNetworks/sandbox-engine/synapse"
)

// DefaultNeuronConfig is the baseline LIF parameter set shared by every
// topology constructor, matching spec.md §8 scenario 1's seed values.
// CorticalColumn perturbs copies of it per layer depth.
func DefaultNeuronConfig() neuron.Config {
	return neuron.Config{
		Threshold:              -50,
		RestingPotential:       -70,
		ResetPotential:         -70,
		MembraneTau:            20,
		RefractoryPeriod:       2,
		Capacitance:            100,
		Resistance:             200,
		AdaptationTimeConstant: 100,
		AdaptationIncrement:    0.5,
		Excitatory:             true,
	}
}

// bernoulli reports a true/false draw with probability p, via
// gonum/stat/distuv rather than a hand-rolled r.Float64() < p comparison.
func bernoulli(r *rand.Rand, p float64) bool {
	return distuv.Bernoulli{P: p, Src: r}.Rand() == 1
}

// uniform draws from U(lo, hi) via gonum/stat/distuv.
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: r}.Rand()
}

func uniformInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// populate constructs size neurons from cfg, independently marking each one
// inhibitory with probability inhibitoryFraction (Dale's principle: a
// neuron's sign is fixed at construction and applied to all of its outgoing
// synapses by network.Network.emitOutgoing).
func populate(net *network.Network, size int, cfg neuron.Config, inhibitoryFraction float64, r *rand.Rand) []int {
	indices := make([]int, size)
	for i := 0; i < size; i++ {
		neuronCfg := cfg
		if inhibitoryFraction > 0 && bernoulli(r, inhibitoryFraction) {
			neuronCfg.Excitatory = false
		}
		idx, err := net.AddNeuron(neuronCfg)
		if err != nil {
			// DefaultNeuronConfig is constructed to always pass neuron.New's
			// validation; a failure here means this package's invariant is
			// broken, not that the caller supplied bad input.
			panic("topology: default neuron config rejected: " + err.Error())
		}
		indices[i] = idx
	}
	return indices
}

func connect(net *network.Network, from, to int, weight float64, delay int) {
	net.AddSynapse(synapse.Config{
		FromIndex:     from,
		ToIndex:       to,
		InitialWeight: weight,
		Delay:         delay,
	})
}

// Random implements spec.md §4.5's "random" variant: every ordered pair
// i≠j connects independently with probability p. inhibitoryFraction marks
// that fraction of neurons inhibitory (0 for an all-excitatory population).
func Random(net *network.Network, size int, p, inhibitoryFraction float64) {
	net.ClearTopology()
	r := net.Rand()
	populate(net, size, DefaultNeuronConfig(), inhibitoryFraction, r)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i == j {
				continue
			}
			if bernoulli(r, p) {
				connect(net, i, j, uniform(r, 0.2, 1.0), uniformInt(r, 1, 5))
			}
		}
	}
}

// Feedforward implements spec.md §4.5's "feedforward" variant: three layers
// of roughly size/3 neurons, each neuron in layer L connecting to each
// neuron in layer L+1 with p=0.5.
func Feedforward(net *network.Network, size int, inhibitoryFraction float64) {
	net.ClearTopology()
	r := net.Rand()
	populate(net, size, DefaultNeuronConfig(), inhibitoryFraction, r)

	layers := splitIntoLayers(size, 3)
	for l := 0; l < len(layers)-1; l++ {
		for _, i := range layers[l] {
			for _, j := range layers[l+1] {
				if bernoulli(r, 0.5) {
					connect(net, i, j, uniform(r, 0.5, 1.0), uniformInt(r, 1, 5))
				}
			}
		}
	}
}

// Ring implements spec.md §4.5's "ring" variant: each i connects to
// (i+1) mod size with fixed weight 0.8 and delay 2.
func Ring(net *network.Network, size int, inhibitoryFraction float64) {
	net.ClearTopology()
	r := net.Rand()
	populate(net, size, DefaultNeuronConfig(), inhibitoryFraction, r)

	for i := 0; i < size; i++ {
		connect(net, i, (i+1)%size, 0.8, 2)
	}
}

// SmallWorld implements spec.md §4.5's "small-world" variant: start from a
// ring, then for each edge, with probability rewireProbability, remove it
// and reconnect its source to a different random target, preserving the
// original weight and delay.
func SmallWorld(net *network.Network, size int, rewireProbability, inhibitoryFraction float64) {
	net.ClearTopology()
	r := net.Rand()
	populate(net, size, DefaultNeuronConfig(), inhibitoryFraction, r)

	for i := 0; i < size; i++ {
		target := (i + 1) % size
		weight, delay := 0.8, 2
		if bernoulli(r, rewireProbability) {
			target = rewiredTarget(r, i, size)
		}
		connect(net, i, target, weight, delay)
	}
}

// rewiredTarget picks a replacement target distinct from the source,
// matching the ring's no-self-loop invariant.
func rewiredTarget(r *rand.Rand, source, size int) int {
	if size <= 1 {
		return source
	}
	for {
		candidate := r.Intn(size)
		if candidate != source {
			return candidate
		}
	}
}

// CorticalColumn implements spec.md §4.5's "cortical-column" variant:
// configurable layer sizes (default [4,6,4,2]) with inter-layer feedforward
// connectivity (p=0.8 from layer 0, else 0.6), within-layer recurrent
// connectivity (p=0.1, no self-loops), and deeper layers biased toward
// slightly higher thresholds and slower membrane time constants.
func CorticalColumn(net *network.Network, layerSizes []int, inhibitoryFraction float64) {
	if len(layerSizes) == 0 {
		layerSizes = []int{4, 6, 4, 2}
	}
	net.ClearTopology()
	r := net.Rand()

	layers := make([][]int, len(layerSizes))
	depthFraction := 0.0
	for depth, size := range layerSizes {
		if len(layerSizes) > 1 {
			depthFraction = float64(depth) / float64(len(layerSizes)-1)
		}
		cfg := DefaultNeuronConfig()
		cfg.Threshold += depthFraction * 5       // slightly harder to fire deeper in the column
		cfg.MembraneTau *= 1 + depthFraction*0.5 // slightly slower integration deeper in the column
		layers[depth] = populate(net, size, cfg, inhibitoryFraction, r)
	}

	for depth := 0; depth < len(layers)-1; depth++ {
		p := 0.6
		if depth == 0 {
			p = 0.8
		}
		for _, i := range layers[depth] {
			for _, j := range layers[depth+1] {
				if bernoulli(r, p) {
					connect(net, i, j, uniform(r, 0.3, 0.7), uniformInt(r, 1, 3))
				}
			}
		}
	}

	for _, layer := range layers {
		for _, i := range layer {
			for _, j := range layer {
				if i == j {
					continue
				}
				if bernoulli(r, 0.1) {
					connect(net, i, j, uniform(r, 0.1, 0.3), 1)
				}
			}
		}
	}
}

// splitIntoLayers partitions [0, size) into n contiguous layers of as-equal
// size as possible, the remainder distributed to the earliest layers.
func splitIntoLayers(size, n int) [][]int {
	layers := make([][]int, n)
	base := size / n
	remainder := size % n
	next := 0
	for l := 0; l < n; l++ {
		count := base
		if l < remainder {
			count++
		}
		layer := make([]int, count)
		for k := 0; k < count; k++ {
			layer[k] = next
			next++
		}
		layers[l] = layer
	}
	return layers
}
