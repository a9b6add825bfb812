package network

const (
	// ActivityHistorySize bounds networkActivity, the per-step spike-count
	// history used by the synchrony index (spec.md §4.4.2).
	ActivityHistorySize = 1000

	// SynchronyWindow is the number of trailing networkActivity samples the
	// synchrony index is computed over.
	SynchronyWindow = 10

	// HomeostasisIntervalMS is the period, in ms, of the homeostasis window:
	// threshold adjustments run on every step whose floor(currentTime) is a
	// multiple of it (spec.md §4.4: "floor(currentTime) mod 100 == 0").
	HomeostasisIntervalMS = 100

	// HomeostasisRateDeadbandHz is the minimum |targetRate - actualRate|
	// that triggers a threshold adjustment.
	HomeostasisRateDeadbandHz = 1.0

	// HomeostasisGain scales the per-adjustment threshold delta.
	HomeostasisGain = 0.001

	// HomeostasisThresholdMin and HomeostasisThresholdMax bound every
	// neuron's threshold under homeostatic adjustment, per spec.md §4.4.3.
	HomeostasisThresholdMin = -60.0
	HomeostasisThresholdMax = -40.0

	// STDPWindowMS is the trailing spike-history window STDP considers on
	// every event delivery, per spec.md §4.4.1.
	STDPWindowMS = 100.0
)
