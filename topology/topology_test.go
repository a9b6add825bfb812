package topology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/sandbox-engine/network"
)

func TestRingConnectsEachNeuronToItsSuccessor(t *testing.T) {
	net := network.New()
	net.Seed(7)
	Ring(net, 5, 0)

	require.Len(t, net.Neurons(), 5)
	require.Len(t, net.Synapses(), 5)
	for i, s := range net.Synapses() {
		require.Equal(t, i, s.FromIndex())
		require.Equal(t, (i+1)%5, s.ToIndex())
	}
}

func TestRandomNeverCreatesSelfLoops(t *testing.T) {
	net := network.New()
	net.Seed(3)
	Random(net, 20, 0.5, 0)

	for _, s := range net.Synapses() {
		require.NotEqual(t, s.FromIndex(), s.ToIndex())
	}
}

func TestCorticalColumnDefaultLayerSizes(t *testing.T) {
	net := network.New()
	net.Seed(11)
	CorticalColumn(net, nil, 0)

	require.Len(t, net.Neurons(), 4+6+4+2)
}

func TestTopologyConstructorsClearPriorState(t *testing.T) {
	net := network.New()
	net.Seed(1)
	Ring(net, 5, 0)
	net.Step([]float64{1000, 0, 0, 0, 0})

	Feedforward(net, 9, 0)
	require.Zero(t, net.CurrentTime(), "expected currentTime reset to 0 after rebuilding topology")
	require.Len(t, net.Neurons(), 9)
}

func TestSmallWorldPreservesEdgeCount(t *testing.T) {
	net := network.New()
	net.Seed(5)
	SmallWorld(net, 10, 0.3, 0)

	require.Len(t, net.Synapses(), 10, "expected small-world to preserve ring's edge count of 10")
}

func TestInhibitoryFractionProducesMixedPopulation(t *testing.T) {
	net := network.New()
	net.Seed(42)
	Random(net, 200, 0.05, 0.5)

	excitatory, inhibitory := 0, 0
	for _, n := range net.Neurons() {
		if n.Excitatory() {
			excitatory++
		} else {
			inhibitory++
		}
	}
	require.Positive(t, inhibitory, "expected a nonzero inhibitory fraction to produce some inhibitory neurons")
	require.Positive(t, excitatory, "expected a nonzero inhibitory fraction to still leave excitatory neurons")
}

func TestZeroInhibitoryFractionIsAllExcitatory(t *testing.T) {
	net := network.New()
	net.Seed(2)
	CorticalColumn(net, nil, 0)

	for _, n := range net.Neurons() {
		require.True(t, n.Excitatory())
	}
}
