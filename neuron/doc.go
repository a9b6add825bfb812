/*
=================================================================================
LEAKY INTEGRATE-AND-FIRE NEURON - CORE SIMULATION UNIT
=================================================================================

OVERVIEW:
This package implements the single-compartment leaky integrate-and-fire (LIF)
neuron that is the fundamental building block of the sandbox's simulation
engine. Unlike the temporal, goroutine-driven neurons this codebase grew out
of, this neuron is a pure, synchronous state machine: the Network advances it
exactly once per discrete time step, and it holds no channels, no timers, and
no internal goroutines.

BIOLOGICAL INSPIRATION:
1. LEAKY INTEGRATION: the membrane potential relaxes toward a resting value
   between inputs, modeling the membrane's RC time constant.
2. THRESHOLD FIRING: once the membrane potential crosses threshold the neuron
   emits a spike, resets, and enters a refractory period.
3. SPIKE-FREQUENCY ADAPTATION: a slowly decaying adaptation current is
   subtracted from the input after every spike, so a neuron driven by a
   constant current fires progressively less often.
4. HOMEOSTASIS: the Network may slowly adjust a neuron's threshold to push
   its long-run firing rate toward a target (see the network package).

DETERMINISM:
Given identical construction parameters and an identical sequence of
(inputCurrent, deltaTime, currentTime) calls to Step, a Neuron's entire
trajectory is reproducible. There is no internal randomness and no
concurrency; the caller owns all scheduling.

=================================================================================
*/
package neuron
