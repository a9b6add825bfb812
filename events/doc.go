/*
Package events holds the in-flight delayed spike deliveries between a
Network's neurons. An event is created when a neuron fires and destroyed
when it is delivered, exactly once, at the first step whose currentTime is
>= its arrivalTime (spec.md §4.3).

The queue is a flat, linearly-scanned slice, matching the teacher repo's
preference for simple vector-backed collections at the scale this engine
targets (spec.md's design notes, §9, call out a min-heap as the upgrade path
for much larger networks; nothing in the public contract changes if that
swap is made later).
*/
package events
