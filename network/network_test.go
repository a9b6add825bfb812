package network

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/sandbox-engine/neuron"
	"github.com/SynapticNetworks/sandbox-engine/synapse"
)

func excitatoryConfig() neuron.Config {
	return neuron.Config{
		Threshold:              -50,
		RestingPotential:       -70,
		ResetPotential:         -70,
		MembraneTau:            20,
		RefractoryPeriod:       2,
		Capacitance:            100,
		Resistance:             200,
		AdaptationTimeConstant: 100,
		Excitatory:             true,
	}
}

func TestAddSynapseRejectsInvalidIndices(t *testing.T) {
	net := New()
	_, err := net.AddNeuron(excitatoryConfig())
	require.NoError(t, err)

	_, err = net.AddSynapse(synapse.Config{FromIndex: 0, ToIndex: 5, InitialWeight: 1, Delay: 1})
	require.Error(t, err, "expected error for out-of-range toIndex")
}

// TestTwoNeuronDelayedTransmission is spec.md §8 scenario 3: N0 -> N1,
// weight 2.0, delay 5ms, N0 driven to spike at t=1.0ms. N1 should receive
// input at the step whose currentTime is in [6.0, 6.0+deltaTime).
func TestTwoNeuronDelayedTransmission(t *testing.T) {
	net := New()
	net.SetDeltaTime(0.1)

	n0cfg := excitatoryConfig()
	n0cfg.Threshold = -69.9 // fires almost immediately under a strong pulse
	n1cfg := excitatoryConfig()
	n1cfg.Threshold = -69.999995 // a single EPSP of weight 2.0 (+1e-5 mV in one step) must push it over

	i0, err := net.AddNeuron(n0cfg)
	require.NoError(t, err)
	i1, err := net.AddNeuron(n1cfg)
	require.NoError(t, err)

	_, err = net.AddSynapse(synapse.Config{FromIndex: i0, ToIndex: i1, InitialWeight: 2.0, Delay: 5})
	require.NoError(t, err)

	n1SpikeTime := -1.0
	n0FireTime := -1.0
	for step := 0; step < int(20/net.DeltaTime()); step++ {
		injected := make([]float64, 2)
		if net.CurrentTime() < 1.0 {
			injected[0] = 5000 // strong pulse to force N0 to fire near t=1.0ms
		}
		net.Step(injected)

		if n0FireTime < 0 && net.Neurons()[i0].FiredThisStep() {
			n0FireTime = net.CurrentTime()
		}
		if n1SpikeTime < 0 && net.Neurons()[i1].FiredThisStep() {
			n1SpikeTime = net.CurrentTime()
		}
	}

	require.GreaterOrEqual(t, n0FireTime, 0.0, "expected N0 to fire")
	require.GreaterOrEqual(t, n1SpikeTime, 0.0, "expected N1 to eventually fire from the delayed EPSP")

	expectedArrival := n0FireTime + 5
	require.GreaterOrEqual(t, n1SpikeTime, expectedArrival)
	require.LessOrEqual(t, n1SpikeTime, expectedArrival+net.DeltaTime()+1e-9)
}

// TestSTDPPotentiationMonotonic is spec.md §8 scenario 4: LTP-only
// configuration with pre reliably preceding post by a fixed interval should
// grow the weight monotonically and asymptote below MaxWeight.
func TestSTDPPotentiationMonotonic(t *testing.T) {
	net := New()
	net.GlobalPlasticityEnabled = true

	pre, _ := net.AddNeuron(excitatoryConfig())
	post, _ := net.AddNeuron(excitatoryConfig())

	syn, err := net.AddSynapse(synapse.Config{
		FromIndex: pre, ToIndex: post, InitialWeight: 0.5, Delay: 1,
		Plasticity: synapse.PlasticityConfig{Enabled: true, APlus: 0.02, AMinus: 0, TauPlus: 20, TauMinus: 20},
	})
	require.NoError(t, err)

	// Force pre to fire, then directly record a "post" spike 5ms later in
	// the post neuron's history, and deliver the resulting event so STDP
	// runs -- repeated 50 times at 100ms spacing, as spec.md §8 describes.
	weights := []float64{syn.Weight()}
	for round := 0; round < 50; round++ {
		start := float64(round) * 100
		net.fireNeuronAt(pre, start+10)
		net.fireNeuronAt(post, start+15)
		net.deliverSynapseEvent(syn, pre, post)
		weights = append(weights, syn.Weight())
	}

	for i := 1; i < len(weights); i++ {
		require.GreaterOrEqual(t, weights[i], weights[i-1]-1e-12,
			"expected monotonically non-decreasing weight at round %d", i)
	}
	require.Greater(t, weights[len(weights)-1], weights[0], "expected weight to have grown")
	require.Less(t, weights[len(weights)-1], synapse.MaxWeight, "expected weight to asymptote below MaxWeight")
}

// fireNeuronAt forces a spike record onto a neuron's history at the given
// time, for controlled STDP-timing tests.
func (net *Network) fireNeuronAt(index int, t float64) {
	net.currentTime = t
	net.neurons[index].Step(1e9, net.deltaTime, t)
}

// deliverSynapseEvent directly invokes the STDP path for syn, as if its
// pending event had just been drained by Step.
func (net *Network) deliverSynapseEvent(syn *synapse.Synapse, preIndex, postIndex int) {
	net.applySTDP(syn, net.neurons[preIndex], net.neurons[postIndex])
}

func TestGlobalPlasticityDisabledFreezesWeights(t *testing.T) {
	net := New()
	net.GlobalPlasticityEnabled = false

	pre, _ := net.AddNeuron(excitatoryConfig())
	post, _ := net.AddNeuron(excitatoryConfig())
	syn, err := net.AddSynapse(synapse.Config{
		FromIndex: pre, ToIndex: post, InitialWeight: 0.5, Delay: 1,
		Plasticity: synapse.PlasticityConfig{Enabled: true, APlus: 0.02, AMinus: 0.02, TauPlus: 20, TauMinus: 20},
	})
	require.NoError(t, err)

	startWeight := syn.Weight()
	for step := 0; step < 2000; step++ {
		net.Step([]float64{300, 0})
	}
	require.Equal(t, startWeight, syn.Weight(), "expected weight unchanged with global plasticity disabled")
}

func TestResetRestoresNetworkState(t *testing.T) {
	net := New()
	pre, err := net.AddNeuron(excitatoryConfig())
	require.NoError(t, err)
	post, err := net.AddNeuron(excitatoryConfig())
	require.NoError(t, err)
	syn, err := net.AddSynapse(synapse.Config{FromIndex: pre, ToIndex: post, InitialWeight: 0.9, Delay: 2})
	require.NoError(t, err)
	net.GlobalPlasticityEnabled = false

	for step := 0; step < 500; step++ {
		net.Step([]float64{300, 0})
	}
	syn.SetWeight(1.5, net.CurrentTime())

	net.Reset()
	net.Reset() // idempotence

	require.Zero(t, net.CurrentTime())
	for _, n := range net.Neurons() {
		require.Equal(t, -70.0, n.MembranePotential(), "expected resting potential after reset")
	}
	require.Equal(t, 0.9, syn.Weight(), "expected synapse weight restored")
}

func TestSynchronyIndexZeroUntilWindowFilled(t *testing.T) {
	net := New()
	_, err := net.AddNeuron(excitatoryConfig())
	require.NoError(t, err)

	for i := 0; i < SynchronyWindow-1; i++ {
		net.Step([]float64{0})
	}
	require.Zero(t, net.SynchronyIndex(), "expected zero synchrony index before window fills")
}
