package neuron

import (
	"fmt"
	"math"
)

// Config defines the construction-time, biologically-scaled parameters of a
// single-compartment LIF neuron. All fields are immutable after construction
// except Threshold, which the network package's homeostatic controller may
// adjust between steps.
//
// Units: mV for potentials, ms for time constants and the refractory period,
// pF for Capacitance, MΩ for Resistance.
type Config struct {
	Threshold        float64 // mV, firing threshold
	RestingPotential float64 // mV
	ResetPotential   float64 // mV, membrane potential immediately after a spike
	MembraneTau      float64 // ms, membrane time constant
	RefractoryPeriod float64 // ms, absolute refractory period
	Capacitance      float64 // pF
	Resistance       float64 // MΩ

	AdaptationTimeConstant float64 // ms, decay time constant of the adaptation current
	AdaptationIncrement    float64 // pA, added to the adaptation current on every spike

	// Excitatory marks whether this neuron's outgoing synaptic current is
	// applied with a positive or negative sign at emission (Dale's
	// principle). Supplements spec.md's single-sign synapse model so mixed
	// excitatory/inhibitory populations (see the topology package) can be
	// built without changing the synapse weight contract ([0, 2]).
	Excitatory bool

	// HistorySize bounds the spike-time and voltage ring buffers. Zero
	// means DefaultHistorySize.
	HistorySize int
}

// Neuron is a single-compartment leaky integrate-and-fire unit, stepped
// synchronously by a Network.
type Neuron struct {
	cfg Config

	threshold float64 // mutable copy of cfg.Threshold; homeostasis adjusts this

	membranePotential float64
	adaptationCurrent float64
	firedThisStep     bool
	refractoryUntil   float64
	lastSpikeTime     float64
	hasSpiked         bool

	spikeHistory   []float64
	voltageHistory []float64
	historySize    int

	totalSpikes int
}

// New constructs a Neuron at resting potential. It fails fast on a
// configuration that violates the resting/reset/threshold ordering invariant,
// on a negative refractory period, or on a non-positive membrane time
// constant, capacitance or resistance.
func New(cfg Config) (*Neuron, error) {
	if !(cfg.ResetPotential <= cfg.RestingPotential && cfg.RestingPotential <= cfg.Threshold) {
		return nil, fmt.Errorf("neuron: invalid config: require resetPotential (%g) <= restingPotential (%g) <= threshold (%g)",
			cfg.ResetPotential, cfg.RestingPotential, cfg.Threshold)
	}
	if cfg.MembraneTau <= 0 {
		return nil, fmt.Errorf("neuron: invalid config: membraneTau must be positive, got %g", cfg.MembraneTau)
	}
	if cfg.RefractoryPeriod < 0 {
		return nil, fmt.Errorf("neuron: invalid config: refractoryPeriod must be non-negative, got %g", cfg.RefractoryPeriod)
	}
	if cfg.Capacitance <= 0 || cfg.Resistance <= 0 {
		return nil, fmt.Errorf("neuron: invalid config: capacitance and resistance must be positive")
	}

	historySize := cfg.HistorySize
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}

	return &Neuron{
		cfg:               cfg,
		threshold:         cfg.Threshold,
		membranePotential: cfg.RestingPotential,
		historySize:       historySize,
	}, nil
}

// Step advances the neuron by one discrete time step and reports whether it
// fired. See spec.md §4.1 for the exact integration contract; this follows
// it step for step.
func (n *Neuron) Step(inputCurrent, deltaTime, currentTime float64) bool {
	n.firedThisStep = false

	if currentTime < n.refractoryUntil {
		n.membranePotential = n.cfg.ResetPotential
		return false
	}

	effectiveCurrent := inputCurrent - n.adaptationCurrent

	dV := (n.cfg.RestingPotential-n.membranePotential)/n.cfg.MembraneTau +
		effectiveCurrent/(n.cfg.Capacitance*n.cfg.Resistance)
	n.membranePotential += dV * deltaTime
	n.membranePotential = clamp(n.membranePotential, -VoltageClampBound, VoltageClampBound)

	n.adaptationCurrent *= math.Exp(-deltaTime / n.cfg.AdaptationTimeConstant)
	n.adaptationCurrent = clamp(n.adaptationCurrent, -AdaptationClampBound, AdaptationClampBound)

	n.appendVoltage(n.membranePotential)

	if n.membranePotential >= n.threshold {
		n.firedThisStep = true
		n.hasSpiked = true
		n.lastSpikeTime = currentTime
		n.refractoryUntil = currentTime + n.cfg.RefractoryPeriod
		n.membranePotential = n.cfg.ResetPotential
		n.adaptationCurrent += n.cfg.AdaptationIncrement
		n.totalSpikes++
		n.appendSpike(currentTime)
	}

	return n.firedThisStep
}

// Reset restores construction-time state: resting potential, empty
// histories, zeroed counters and adaptation current.
func (n *Neuron) Reset() {
	n.threshold = n.cfg.Threshold
	n.membranePotential = n.cfg.RestingPotential
	n.adaptationCurrent = 0
	n.firedThisStep = false
	n.refractoryUntil = 0
	n.lastSpikeTime = 0
	n.hasSpiked = false
	n.spikeHistory = nil
	n.voltageHistory = nil
	n.totalSpikes = 0
}

// InstantaneousFiringRate estimates the firing rate in Hz from the mean
// inter-spike interval of the last up-to-10 recorded spikes. Returns 0 if
// fewer than 2 spikes have been recorded.
func (n *Neuron) InstantaneousFiringRate() float64 {
	window := n.spikeHistory
	if len(window) > FiringRateWindow {
		window = window[len(window)-FiringRateWindow:]
	}
	if len(window) < 2 {
		return 0
	}

	totalInterval := window[len(window)-1] - window[0]
	intervals := float64(len(window) - 1)
	meanISI := totalInterval / intervals
	if meanISI <= 0 {
		return 0
	}
	return 1000.0 / meanISI
}

// MembranePotentialNormalized maps the current membrane potential into
// [0, 1] relative to [restingPotential, threshold].
func (n *Neuron) MembranePotentialNormalized() float64 {
	span := n.threshold - n.cfg.RestingPotential
	if span == 0 {
		return 0
	}
	return clamp((n.membranePotential-n.cfg.RestingPotential)/span, 0, 1)
}

// IsInRefractoryPeriod reports whether t falls before the end of the
// neuron's current refractory window.
func (n *Neuron) IsInRefractoryPeriod(t float64) bool {
	return t < n.refractoryUntil
}

// MembranePotential returns the current membrane potential in mV.
func (n *Neuron) MembranePotential() float64 { return n.membranePotential }

// FiredThisStep reports whether the most recent Step call produced a spike.
func (n *Neuron) FiredThisStep() bool { return n.firedThisStep }

// Threshold returns the neuron's current (possibly homeostatically adjusted)
// firing threshold.
func (n *Neuron) Threshold() float64 { return n.threshold }

// SetThreshold sets the neuron's firing threshold directly. Used by the
// network package's homeostatic controller; not otherwise mutated after
// construction.
func (n *Neuron) SetThreshold(t float64) { n.threshold = t }

// Excitatory reports the sign this neuron applies to its outgoing synaptic
// current at emission.
func (n *Neuron) Excitatory() bool { return n.cfg.Excitatory }

// TotalSpikes returns the cumulative spike count since construction or the
// last Reset.
func (n *Neuron) TotalSpikes() int { return n.totalSpikes }

// LastSpikeTime returns the simulation time of the most recent spike, and
// whether the neuron has ever fired.
func (n *Neuron) LastSpikeTime() (float64, bool) { return n.lastSpikeTime, n.hasSpiked }

// SpikeHistory returns a copy of the bounded spike-time ring buffer, oldest
// first. Copied so callers (STDP, stats) cannot mutate internal state.
func (n *Neuron) SpikeHistory() []float64 {
	out := make([]float64, len(n.spikeHistory))
	copy(out, n.spikeHistory)
	return out
}

// VoltageHistory returns a copy of the bounded membrane-voltage ring buffer.
func (n *Neuron) VoltageHistory() []float64 {
	out := make([]float64, len(n.voltageHistory))
	copy(out, n.voltageHistory)
	return out
}

func (n *Neuron) appendSpike(t float64) {
	n.spikeHistory = append(n.spikeHistory, t)
	if len(n.spikeHistory) > n.historySize {
		n.spikeHistory = n.spikeHistory[len(n.spikeHistory)-n.historySize:]
	}
}

func (n *Neuron) appendVoltage(v float64) {
	n.voltageHistory = append(n.voltageHistory, v)
	if len(n.voltageHistory) > n.historySize {
		n.voltageHistory = n.voltageHistory[len(n.voltageHistory)-n.historySize:]
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
