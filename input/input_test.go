package input

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoneProducesZeroVector(t *testing.T) {
	g := NewGenerator(Config{Pattern: PatternNone, Strength: 1})
	out := g.Generate(rand.New(rand.NewSource(1)), 10, 4)
	for _, v := range out {
		require.Zero(t, v, "expected all-zero current for PatternNone")
	}
}

func TestUnrecognizedPatternDegradesToNone(t *testing.T) {
	g := NewGenerator(Config{Pattern: "not-a-real-pattern", Strength: 1})
	out := g.Generate(rand.New(rand.NewSource(1)), 10, 4)
	for _, v := range out {
		require.Zero(t, v, "expected unrecognized pattern to degrade to zero current")
	}
}

func TestRhythmicGatesFirstTwoNeurons(t *testing.T) {
	g := NewGenerator(Config{Pattern: PatternRhythmic, Strength: 1})
	r := rand.New(rand.NewSource(1))

	// sin(0.02*t) > 0.5 holds for some t; scan until we find a gated tick.
	found := false
	for tick := 0; tick < 2000; tick++ {
		out := g.Generate(r, float64(tick), 5)
		if out[0] == 40 && out[1] == 40 && out[2] == 0 {
			found = true
			break
		}
	}
	require.True(t, found, "expected to observe a gated Rhythmic tick within 2000 steps")
}

func TestPulseTrainPulsesOnlyDuringWindow(t *testing.T) {
	g := NewGenerator(Config{Pattern: PatternPulseTrain, Strength: 1})
	r := rand.New(rand.NewSource(1))

	inWindow := g.Generate(r, 2, 3)
	outOfWindow := g.Generate(r, 50, 3)

	require.Equal(t, 60.0, inWindow[0], "expected pulse at t=2")
	require.Zero(t, outOfWindow[0], "expected no pulse at t=50")
}

func TestStrengthScalesOutput(t *testing.T) {
	g := NewGenerator(Config{Pattern: PatternPulseTrain, Strength: 2.0})
	r := rand.New(rand.NewSource(1))
	out := g.Generate(r, 1, 3)
	require.Equal(t, 120.0, out[0], "expected strength multiplier to double the 60pA pulse to 120")
}

func TestMiniEventsAddCurrentWithinConfiguredRange(t *testing.T) {
	g := NewGenerator(Config{Pattern: PatternNone, Strength: 1, MiniRate: 1.0, MiniMin: 2, MiniMax: 10})
	r := rand.New(rand.NewSource(1))

	out := g.Generate(r, 0, 1)
	require.GreaterOrEqual(t, out[0], 2.0)
	require.LessOrEqual(t, out[0], 10.0)
}

func TestNoiseLevelZeroAddsNoNoise(t *testing.T) {
	g := NewGenerator(Config{Pattern: PatternNone, Strength: 1, NoiseLevel: 0})
	out := g.Generate(rand.New(rand.NewSource(1)), 0, 4)
	for _, v := range out {
		require.Zero(t, v, "expected zero noise contribution when NoiseLevel == 0")
	}
}
