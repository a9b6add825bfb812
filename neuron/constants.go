package neuron

// ============================================================================
// NEURON FACTORY CONSTANTS - BIOLOGICAL PARAMETER DEFAULTS
// ============================================================================

const (
	// DefaultHistorySize bounds the spike-time and membrane-voltage ring
	// buffers. Biological basis: a few hundred milliseconds of history is
	// enough to drive STDP's 100ms trailing window (network package) and
	// the instantaneous firing rate estimate below, without growing memory
	// unboundedly over a long run.
	DefaultHistorySize = 200

	// FiringRateWindow is the maximum number of trailing spike-history
	// entries used by InstantaneousFiringRate.
	FiringRateWindow = 10

	// VoltageClampBound is the absolute value beyond which the membrane
	// potential is clamped after integration. Pathological inputs (e.g. an
	// enormous constant current) must not be allowed to propagate Inf/NaN
	// into histories or downstream statistics.
	VoltageClampBound = 1e6

	// AdaptationClampBound bounds the adaptation current for the same reason.
	AdaptationClampBound = 1e6
)
