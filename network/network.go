package network

import (
	"fmt"
	"math/rand"

	"github.com/SynapticNetworks/sandbox-engine/events"
	"github.com/SynapticNetworks/sandbox-engine/neuron"
	"github.com/SynapticNetworks/sandbox-engine/synapse"
)

// DefaultDeltaTime is the simulation step size in ms, per spec.md §6.
const DefaultDeltaTime = 0.1

// Network owns the neuron sequence, the synapse sequence, and the in-flight
// spike-event queue. See spec.md §3 for the full ownership and lifecycle
// contract.
type Network struct {
	neurons  []*neuron.Neuron
	synapses []*synapse.Synapse
	queue    *events.Queue

	currentTime float64
	deltaTime   float64

	GlobalPlasticityEnabled bool
	HomeostasisEnabled      bool
	TargetFiringRate        float64 // Hz

	networkActivity []int
	synchronyIndex  float64

	rng *rand.Rand
}

// New constructs an empty Network with the default step size and an RNG
// source seeded with 1 (call Seed to choose a different seed for
// topology/input generation).
func New() *Network {
	return &Network{
		queue:     events.NewQueue(),
		deltaTime: DefaultDeltaTime,
		rng:       rand.New(rand.NewSource(1)),
	}
}

// Seed reseeds the Network's RNG source, used by the topology and input
// packages for reproducible stochastic construction and current generation.
// Supplements spec.md, whose stochastic topology/input rules (§4.5, §4.6)
// are otherwise silent on reproducibility.
func (net *Network) Seed(seed int64) {
	net.rng = rand.New(rand.NewSource(seed))
}

// Rand returns the Network's RNG source, for use by the topology and input
// packages.
func (net *Network) Rand() *rand.Rand { return net.rng }

// CurrentTime returns the simulation clock in ms.
func (net *Network) CurrentTime() float64 { return net.currentTime }

// DeltaTime returns the simulation step size in ms.
func (net *Network) DeltaTime() float64 { return net.deltaTime }

// SetDeltaTime sets the simulation step size in ms.
func (net *Network) SetDeltaTime(dt float64) { net.deltaTime = dt }

// Neurons returns the Network's index-addressed neuron sequence. The
// returned slice aliases Network's internal storage and must not be
// appended to or re-ordered by callers; individual *neuron.Neuron values
// may be read through their own accessor methods.
func (net *Network) Neurons() []*neuron.Neuron { return net.neurons }

// Synapses returns the Network's synapse sequence, under the same aliasing
// contract as Neurons.
func (net *Network) Synapses() []*synapse.Synapse { return net.synapses }

// SynchronyIndex returns the most recently computed population synchrony
// index (spec.md §4.4.2).
func (net *Network) SynchronyIndex() float64 { return net.synchronyIndex }

// AddNeuron constructs a neuron from cfg, appends it to the Network's
// index-stable neuron sequence, and returns its index.
func (net *Network) AddNeuron(cfg neuron.Config) (int, error) {
	n, err := neuron.New(cfg)
	if err != nil {
		return 0, err
	}
	net.neurons = append(net.neurons, n)
	return len(net.neurons) - 1, nil
}

// AddSynapse constructs a synapse from cfg and appends it to the Network's
// synapse sequence, after validating that both endpoint indices refer to
// neurons that exist.
func (net *Network) AddSynapse(cfg synapse.Config) (*synapse.Synapse, error) {
	if cfg.FromIndex < 0 || cfg.FromIndex >= len(net.neurons) {
		return nil, fmt.Errorf("network: invalid fromIndex %d (have %d neurons)", cfg.FromIndex, len(net.neurons))
	}
	if cfg.ToIndex < 0 || cfg.ToIndex >= len(net.neurons) {
		return nil, fmt.Errorf("network: invalid toIndex %d (have %d neurons)", cfg.ToIndex, len(net.neurons))
	}
	s, err := synapse.New(cfg)
	if err != nil {
		return nil, err
	}
	net.synapses = append(net.synapses, s)
	return s, nil
}

// ClearTopology empties the neuron sequence, the synapse sequence, and the
// event queue, and resets currentTime to zero. Topology constructors
// (topology package) call this before rebuilding from scratch, per spec.md
// §4.5's "clear neurons, synapses, and queue" contract.
func (net *Network) ClearTopology() {
	net.neurons = nil
	net.synapses = nil
	net.queue.Clear()
	net.networkActivity = nil
	net.synchronyIndex = 0
	net.currentTime = 0
}

// Reset restores the Network to its just-populated state: currentTime to
// zero, every neuron to resting potential with empty histories, and every
// synapse's weight to its first recorded value. Unlike ClearTopology, the
// neuron and synapse populations themselves are kept.
func (net *Network) Reset() {
	net.currentTime = 0
	net.queue.Clear()
	net.networkActivity = nil
	net.synchronyIndex = 0
	for _, n := range net.neurons {
		n.Reset()
	}
	for _, s := range net.synapses {
		s.Reset()
	}
}

// enqueue is a package-private helper used by step.go to schedule a spike
// event without exposing the event queue itself outside the package.
func (net *Network) enqueue(e events.SpikeEvent) {
	net.queue.Enqueue(e)
}

// findSynapseByID does a linear scan for the synapse with the given stable
// ID, matching the teacher's preference for simple, id-keyed lookups at
// this network's scale (see events.Queue's doc comment).
func (net *Network) findSynapseByID(id string) *synapse.Synapse {
	for _, s := range net.synapses {
		if s.ID() == id {
			return s
		}
	}
	return nil
}
