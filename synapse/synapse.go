package synapse

import (
	"fmt"

	"github.com/google/uuid"
)

// Config defines the construction-time parameters of a synapse. FromIndex
// and ToIndex are validated by the Network at AddSynapse time, not here,
// since validity depends on the Network's current neuron count.
type Config struct {
	FromIndex int
	ToIndex   int

	InitialWeight float64
	Delay         int // integer ms, >= 1

	Plasticity PlasticityConfig
	Pruning    PruningConfig
}

// Synapse is a directed, weighted, delayed edge from FromIndex to ToIndex,
// owned exclusively by a Network. See spec.md §3.
type Synapse struct {
	id   string
	from int
	to   int

	weight float64
	delay  int

	plasticity PlasticityConfig
	pruning    PruningConfig

	weightHistory  []float64
	lastUpdateTime float64
	lastActiveTime float64

	// trace holds the single exponential spike trace used by
	// synapse.TraceRule STDP (see the network package's stdp.go), bumped on
	// both pre- and post-synaptic spikes; it lives here because it is
	// per-edge state, not per-neuron.
	trace float64
}

// New constructs a Synapse. It fails fast if Delay < 1.
func New(cfg Config) (*Synapse, error) {
	if cfg.Delay < 1 {
		return nil, fmt.Errorf("synapse: delay must be >= 1ms, got %d", cfg.Delay)
	}
	weight := clamp(cfg.InitialWeight, MinWeight, MaxWeight)

	return &Synapse{
		id:            uuid.New().String(),
		from:          cfg.FromIndex,
		to:            cfg.ToIndex,
		weight:        weight,
		delay:         cfg.Delay,
		plasticity:    cfg.Plasticity,
		pruning:       cfg.Pruning,
		weightHistory: []float64{weight},
	}, nil
}

// ID returns the synapse's stable identifier, used by the event queue to
// re-locate the synapse that emitted a given spike event.
func (s *Synapse) ID() string { return s.id }

// FromIndex and ToIndex return the synapse's endpoint neuron indices.
func (s *Synapse) FromIndex() int { return s.from }
func (s *Synapse) ToIndex() int   { return s.to }

// Weight returns the current synaptic weight.
func (s *Synapse) Weight() float64 { return s.weight }

// Delay returns the synapse's axonal delay in integer ms.
func (s *Synapse) Delay() int { return s.delay }

// Plasticity returns the synapse's plasticity configuration.
func (s *Synapse) Plasticity() PlasticityConfig { return s.plasticity }

// Trace returns and SetTrace sets the synapse's exponential spike trace,
// used only by the network package's TraceRule STDP implementation.
func (s *Synapse) Trace() float64     { return s.trace }
func (s *Synapse) SetTrace(v float64) { s.trace = v }

// WeightHistory returns a copy of the bounded weight-history ring buffer.
// WeightHistory()[0] is always the construction weight; Reset restores it.
func (s *Synapse) WeightHistory() []float64 {
	out := make([]float64, len(s.weightHistory))
	copy(out, s.weightHistory)
	return out
}

// LastUpdateTime returns the simulation time of the most recent
// weight-history-worthy weight change.
func (s *Synapse) LastUpdateTime() float64 { return s.lastUpdateTime }

// SetWeight clamps newWeight to [MinWeight, MaxWeight] and applies it. If
// the change in magnitude exceeds WeightChangeEpsilon, the new weight is
// appended to the bounded weight history and lastUpdateTime is refreshed.
func (s *Synapse) SetWeight(newWeight float64, currentTime float64) {
	clamped := clamp(newWeight, MinWeight, MaxWeight)
	if absDiff(clamped, s.weight) > WeightChangeEpsilon {
		s.weightHistory = append(s.weightHistory, clamped)
		if len(s.weightHistory) > WeightHistorySize {
			s.weightHistory = s.weightHistory[len(s.weightHistory)-WeightHistorySize:]
		}
		s.lastUpdateTime = currentTime
	}
	s.weight = clamped
}

// RecordActivity marks the synapse as having transmitted at currentTime.
// Used only by ShouldPrune's inactivity check.
func (s *Synapse) RecordActivity(currentTime float64) {
	s.lastActiveTime = currentTime
}

// ShouldPrune reports whether this synapse is a structural-plasticity
// pruning candidate: weak and inactive for longer than its configured
// thresholds, outside its post-update protection period. This is a
// read-only diagnostic (see SPEC_FULL.md's Supplemented Features) -- the
// Network never acts on it automatically.
func (s *Synapse) ShouldPrune(currentTime float64) bool {
	if !s.pruning.Enabled {
		return false
	}
	if currentTime-s.lastUpdateTime < s.pruning.ProtectionPeriod {
		return false
	}
	isWeak := s.weight < s.pruning.WeightThreshold
	isInactive := currentTime-s.lastActiveTime > s.pruning.InactivityThreshold
	return isWeak && isInactive
}

// Reset restores the synapse's weight to its construction-time value
// (weightHistory[0]) and truncates the history to that single element, per
// spec.md §3's reset invariant.
func (s *Synapse) Reset() {
	initial := s.weightHistory[0]
	s.weight = initial
	s.weightHistory = []float64{initial}
	s.lastUpdateTime = 0
	s.lastActiveTime = 0
	s.trace = 0
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

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
