package network

import "gonum.org/v1/gonum/stat"

// recomputeSynchronyIndex implements spec.md §4.4.2: the variance-to-mean
// ratio of the last 10 networkActivity samples, defined to be 0 until at
// least 10 samples exist. Mean/Variance are computed with gonum/stat rather
// than hand-rolled, matching the rest of the example pack's use of
// gonum.org/v1/gonum for this kind of population statistic.
func (net *Network) recomputeSynchronyIndex() {
	if len(net.networkActivity) < SynchronyWindow {
		net.synchronyIndex = 0
		return
	}

	window := net.networkActivity[len(net.networkActivity)-SynchronyWindow:]
	samples := make([]float64, len(window))
	for i, v := range window {
		samples[i] = float64(v)
	}

	mean := stat.Mean(samples, nil)
	variance := stat.Variance(samples, nil)
	net.synchronyIndex = variance / (mean + 0.001)
}

// Stats is the read-only network-level summary from spec.md §6's
// getNetworkStats contract, plus the pruning-candidate supplement described
// in SPEC_FULL.md.
type Stats struct {
	TotalSpikes       int
	AvgFiringRate     float64 // Hz, averaged across neurons
	TotalSynapses     int
	AvgWeight         float64
	Connectivity      float64 // |synapses| / (N*(N-1))
	ActiveNeurons     int     // fired on the most recent step
	SynchronyIndex    float64
	CurrentTime       float64
	PruningCandidates int
}

// GetNetworkStats computes the current summary statistics. Mean firing rate
// and mean weight are computed with gonum/stat, matching
// recomputeSynchronyIndex's approach.
func (net *Network) GetNetworkStats() Stats {
	s := Stats{
		TotalSynapses:  len(net.synapses),
		SynchronyIndex: net.synchronyIndex,
		CurrentTime:    net.currentTime,
	}

	if len(net.neurons) > 0 {
		rates := make([]float64, len(net.neurons))
		for i, n := range net.neurons {
			s.TotalSpikes += n.TotalSpikes()
			rates[i] = n.InstantaneousFiringRate()
			if n.FiredThisStep() {
				s.ActiveNeurons++
			}
		}
		s.AvgFiringRate = stat.Mean(rates, nil)

		nn := float64(len(net.neurons))
		if nn > 1 {
			s.Connectivity = float64(len(net.synapses)) / (nn * (nn - 1))
		}
	}

	if len(net.synapses) > 0 {
		weights := make([]float64, len(net.synapses))
		for i, syn := range net.synapses {
			weights[i] = syn.Weight()
			if syn.ShouldPrune(net.currentTime) {
				s.PruningCandidates++
			}
		}
		s.AvgWeight = stat.Mean(weights, nil)
	}

	return s
}
