// Package input generates per-neuron injected-current vectors from a named
// pattern, plus global strength scaling, Gaussian noise, and miniature-event
// currents (spec.md §4.6).
//
// Patterns are dispatched through a lookup table keyed by name rather than
// a type switch or reflection, per spec.md §9's "polymorphism over
// patterns" guidance. Noise sampling uses gonum.org/v1/gonum/stat/distuv's
// Normal distribution, in keeping with the rest of this module's preference
// for gonum over a hand-rolled Box-Muller transform.
package input
