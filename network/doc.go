/*
=================================================================================
NETWORK - OWNS NEURONS, SYNAPSES, AND THE EVENT QUEUE
=================================================================================

A Network owns the neuron sequence (index-addressed, index-stable for the
Network's lifetime), the synapse sequence, and the in-flight spike-event
queue. It exposes exactly one way to advance simulated time: Step. Step is
an atomic, single-threaded time advance -- drain due events, integrate every
neuron, emit newly-fired neurons' outgoing events, then run the periodic
housekeeping (synchrony index, homeostasis) described in spec.md §4.4.

This mirrors the teacher's "matrix as developmental machinery" idea
(extracellular/matrix.go) in spirit -- one component is the authoritative
owner and coordinator of everything else -- but trades that package's
goroutine-per-component, callback-injected concurrency model for a plain,
synchronous method call, because spec.md §5 requires the whole engine to be
strictly single-threaded and cooperative.
=================================================================================
*/
package network
