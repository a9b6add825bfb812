package network

import (
	"github.com/SynapticNetworks/sandbox-engine/events"
	"github.com/SynapticNetworks/sandbox-engine/neuron"
)

// Step advances the simulation by exactly one deltaTime tick. Ordering
// follows spec.md §4.4 precisely:
//
//  1. currentTime += deltaTime
//  2. allocate a per-neuron input accumulator (external injected current is
//     summed in via the injected argument, filled by the caller before Step)
//  3. drain due events: add their current to the accumulator and run STDP
//  4. advance every neuron; newly fired neurons enqueue outgoing events
//  5. record activeSpikes into networkActivity
//  6. recompute the synchrony index
//  7. run homeostasis on every step whose floor(currentTime) is a multiple
//     of 100ms (with deltaTime 0.1 that is about ten consecutive steps per
//     100ms window, including the first millisecond)
func (net *Network) Step(injected []float64) {
	net.currentTime += net.deltaTime

	inputs := make([]float64, len(net.neurons))
	for i, v := range injected {
		if i < len(inputs) {
			inputs[i] = v
		}
	}

	net.drainDueEvents(inputs)

	activeSpikes := net.advanceNeurons(inputs)

	net.networkActivity = append(net.networkActivity, activeSpikes)
	if len(net.networkActivity) > ActivityHistorySize {
		net.networkActivity = net.networkActivity[len(net.networkActivity)-ActivityHistorySize:]
	}

	net.recomputeSynchronyIndex()

	if net.HomeostasisEnabled && isHomeostasisTick(net.currentTime) {
		net.runHomeostasis()
	}
}

func isHomeostasisTick(currentTime float64) bool {
	// floor(currentTime) mod 100 == 0, per spec.md §4.4 step 7.
	return int64(currentTime)%HomeostasisIntervalMS == 0
}

func (net *Network) drainDueEvents(inputs []float64) {
	due := net.queue.DrainDueAt(net.currentTime)
	for _, e := range due {
		if e.TargetIndex >= 0 && e.TargetIndex < len(inputs) {
			inputs[e.TargetIndex] += e.WeightAtEmission
		}
		net.applySTDPForEvent(e)
	}
}

// applySTDPForEvent locates the synapse that emitted e and, if plasticity is
// enabled both globally and on that synapse, applies its configured rule.
func (net *Network) applySTDPForEvent(e events.SpikeEvent) {
	if !net.GlobalPlasticityEnabled {
		return
	}
	if e.SourceIndex < 0 || e.SourceIndex >= len(net.neurons) ||
		e.TargetIndex < 0 || e.TargetIndex >= len(net.neurons) {
		return
	}

	syn := net.findSynapseByID(e.SynapseID)
	if syn == nil || !syn.Plasticity().Enabled {
		return
	}

	pre := net.neurons[e.SourceIndex]
	post := net.neurons[e.TargetIndex]
	net.applySTDP(syn, pre, post)
}

func (net *Network) advanceNeurons(inputs []float64) int {
	activeSpikes := 0
	for i, n := range net.neurons {
		fired := n.Step(inputs[i], net.deltaTime, net.currentTime)
		if !fired {
			continue
		}
		activeSpikes++
		net.emitOutgoing(i, n)
	}
	return activeSpikes
}

func (net *Network) emitOutgoing(sourceIndex int, source *neuron.Neuron) {
	sign := 1.0
	if !source.Excitatory() {
		sign = -1.0
	}
	for _, s := range net.synapses {
		if s.FromIndex() != sourceIndex {
			continue
		}
		s.RecordActivity(net.currentTime)
		net.enqueue(events.SpikeEvent{
			SourceIndex:      sourceIndex,
			TargetIndex:      s.ToIndex(),
			WeightAtEmission: sign * s.Weight(),
			ArrivalTime:      net.currentTime + float64(s.Delay()),
			SynapseID:        s.ID(),
		})
	}
}
