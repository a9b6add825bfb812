// Package topology builds named neuron/synapse population structures on top
// of a network.Network, replacing its contents wholesale (spec.md §4.5).
//
// The teacher's own topology code (examples/xor_problem and the hand-wired
// matrix construction in extracellular/matrix.go) builds populations by
// direct, bespoke calls for a single fixed problem. Here the same
// clear-then-build idiom is generalized into five named constructors sharing
// one random-sampling helper set, each driven by net.Rand() for reproducible
// output under network.Seed.
package topology
