package network

import (
	"math"

	"github.com/SynapticNetworks/sandbox-engine/neuron"
	"github.com/SynapticNetworks/sandbox-engine/synapse"
)

// applySTDP dispatches to the synapse's configured rule. Both semantics are
// offered per spec.md §9's Open Question; PairwiseRule is the zero value
// and is what the seed scenarios in spec.md §8 exercise.
func (net *Network) applySTDP(syn *synapse.Synapse, pre, post *neuron.Neuron) {
	switch syn.Plasticity().Rule {
	case synapse.TraceRule:
		net.applyTraceSTDP(syn, pre, post)
	default:
		net.applyPairwiseSTDP(syn, pre, post)
	}
}

// applyPairwiseSTDP implements spec.md §4.4.1 exactly: every (preSpike,
// postSpike) pair within a 100ms trailing window contributes to Δw, summed
// and applied once per event delivery. This is deliberately O(history²) per
// delivery, and will double-count a pair's contribution across repeated
// deliveries within the same window -- spec.md §9 flags both as known
// properties of the pairwise rule, retained here for behavioral parity.
func (net *Network) applyPairwiseSTDP(syn *synapse.Synapse, pre, post *neuron.Neuron) {
	p := syn.Plasticity()
	windowStart := net.currentTime - STDPWindowMS

	preSpikes := trailingWindow(pre.SpikeHistory(), windowStart)
	postSpikes := trailingWindow(post.SpikeHistory(), windowStart)

	deltaW := 0.0
	for _, tPre := range preSpikes {
		for _, tPost := range postSpikes {
			dt := tPost - tPre
			switch {
			case dt > 0:
				deltaW += p.APlus * math.Exp(-dt/p.TauPlus)
			case dt < 0:
				deltaW -= p.AMinus * math.Exp(dt/p.TauMinus)
			}
		}
	}

	if deltaW != 0 {
		syn.SetWeight(syn.Weight()+deltaW, net.currentTime)
	}
}

// applyTraceSTDP implements the preferred, cheaper alternative from spec.md
// §9: one exponential trace per synapse, shared by both endpoints, decayed
// since lastUpdateTime and bumped by 1 whenever either endpoint has just
// spiked, applied once per delivery rather than re-summed over the full
// spike history.
func (net *Network) applyTraceSTDP(syn *synapse.Synapse, pre, post *neuron.Neuron) {
	p := syn.Plasticity()

	dt := net.currentTime - syn.LastUpdateTime()
	if dt < 0 {
		dt = 0
	}
	trace := syn.Trace() * math.Exp(-dt/p.TauPlus)

	preFired := pre.FiredThisStep()
	postFired := post.FiredThisStep()

	deltaW := 0.0
	if postFired {
		// A post-synaptic spike arriving while the trace is elevated means
		// an endpoint fired recently: potentiate.
		deltaW += p.APlus * trace
	}
	if preFired {
		// A fresh pre-synaptic spike against whatever trace remains from
		// recent spikes: depress.
		deltaW -= p.AMinus * trace
		trace += 1
	}
	if postFired {
		trace += 1
	}

	syn.SetTrace(trace)
	if deltaW != 0 {
		syn.SetWeight(syn.Weight()+deltaW, net.currentTime)
	}
}

func trailingWindow(spikes []float64, after float64) []float64 {
	var out []float64
	for _, t := range spikes {
		if t > after {
			out = append(out, t)
		}
	}
	return out
}
