package synapse

// PlasticityConfig defines the per-edge spike-timing dependent plasticity
// parameters from spec.md §3. A synapse with Enabled == false never changes
// weight, regardless of the Network's global plasticity flag.
type PlasticityConfig struct {
	Enabled bool

	// APlus/AMinus scale the LTP/LTD branches; TauPlus/TauMinus (ms) set
	// their exponential decay constants.
	APlus   float64
	AMinus  float64
	TauPlus float64
	TauMinus float64

	// Rule selects pairwise-sum or trace-based STDP semantics. Zero value
	// is PairwiseRule, matching spec.md §4.4.1's default behavior.
	Rule Rule
}

// PruningConfig is a read-only structural-plasticity diagnostic, adapted
// from the teacher's synapse/synapse.go ShouldPrune machinery. The Network
// never auto-deletes a synapse mid-run (spec.md's ownership model treats the
// synapse sequence as index-stable); this only flags candidates for an
// external caller to act on between runs.
// All durations below are in simulation milliseconds, the same clock the
// Network steps on (spec.md §3), not wall-clock time.
type PruningConfig struct {
	Enabled             bool
	WeightThreshold     float64
	InactivityThreshold float64
	ProtectionPeriod    float64
}
