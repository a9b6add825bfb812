package synapse

// ============================================================================
// SYNAPSE FACTORY CONSTANTS
// ============================================================================

const (
	// MinWeight and MaxWeight bound every synapse's weight for its entire
	// lifetime, per spec.md §3.
	MinWeight = 0.0
	MaxWeight = 2.0

	// WeightHistorySize bounds the weight-history ring buffer.
	WeightHistorySize = 100

	// WeightChangeEpsilon is the minimum |Δweight| that triggers a new
	// weight-history entry and lastUpdateTime refresh, per spec.md §4.2.
	WeightChangeEpsilon = 0.001
)

// Rule selects which STDP update semantics a synapse's plasticity uses.
// Both are offered per spec.md §9's Open Question: the pairwise rule is
// retained for behavioral parity with the original specification text, the
// trace rule is the preferred, cheaper alternative.
type Rule int

const (
	// PairwiseRule sums every (preSpike, postSpike) pair within the
	// trailing window on every event delivery (spec.md §4.4.1).
	PairwiseRule Rule = iota
	// TraceRule updates a synapse's weight from exponential pre/post
	// synaptic traces, updated once per spike rather than re-summed per
	// delivery.
	TraceRule
)
