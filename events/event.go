package events

// SpikeEvent is an in-flight delivery from one neuron to another, created
// when the source neuron fires and destroyed on delivery.
type SpikeEvent struct {
	SourceIndex      int
	TargetIndex      int
	WeightAtEmission float64
	ArrivalTime      float64
	SynapseID        string
}
