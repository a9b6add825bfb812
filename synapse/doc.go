/*
=================================================================================
SYNAPSE - DELAYED, PLASTIC DIRECTED EDGE
=================================================================================

A Synapse is a passive record: a directed, weighted, delayed edge between two
neuron indices owned by a Network. Only the Network mutates a synapse's
weight (via SetWeight, driven by STDP); the synapse
itself never schedules deliveries or reads neuron state.

This is a deliberate simplification of the teacher package's EnhancedSynapse,
which composed vesicle dynamics, an activity monitor and a callback-driven
integration with an ExtracellularMatrix. Those biological sub-systems model
conductance-based, chemically-mediated transmission, which spec.md's
Non-goals explicitly place out of scope for this engine; what survives here
is the ID-stability, weight-history, and pruning-candidacy machinery that
generalizes directly to a single-compartment, delay-and-weight synapse.
=================================================================================
*/
package synapse
