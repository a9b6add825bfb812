package synapse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsZeroDelay(t *testing.T) {
	_, err := New(Config{FromIndex: 0, ToIndex: 1, InitialWeight: 1, Delay: 0})
	require.Error(t, err)
}

func TestWeightClampedToRange(t *testing.T) {
	s, err := New(Config{FromIndex: 0, ToIndex: 1, InitialWeight: 5, Delay: 1})
	require.NoError(t, err)
	require.Equal(t, MaxWeight, s.Weight())

	s.SetWeight(-1, 10)
	require.Equal(t, MinWeight, s.Weight())
}

func TestWeightHistoryTracksOnlyMeaningfulChanges(t *testing.T) {
	s, err := New(Config{FromIndex: 0, ToIndex: 1, InitialWeight: 1.0, Delay: 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1.0}, s.WeightHistory())

	s.SetWeight(1.0+WeightChangeEpsilon/2, 5) // below epsilon: no history entry
	require.Len(t, s.WeightHistory(), 1, "expected no new history entry for a sub-epsilon change")

	s.SetWeight(1.1, 7) // above epsilon: new entry
	hist := s.WeightHistory()
	require.Len(t, hist, 2)
	require.Equal(t, 1.1, hist[1])
	require.Equal(t, 7.0, s.LastUpdateTime())
}

func TestResetRestoresConstructionWeight(t *testing.T) {
	s, err := New(Config{FromIndex: 0, ToIndex: 1, InitialWeight: 0.5, Delay: 2})
	require.NoError(t, err)

	s.SetWeight(1.9, 3)
	s.SetWeight(0.2, 6)

	s.Reset()
	s.Reset() // idempotence

	require.Equal(t, 0.5, s.Weight())
	require.Equal(t, []float64{0.5}, s.WeightHistory())
}

func TestShouldPruneRequiresWeakAndInactive(t *testing.T) {
	s, err := New(Config{
		FromIndex: 0, ToIndex: 1, InitialWeight: 0.01, Delay: 1,
		Pruning: PruningConfig{Enabled: true, WeightThreshold: 0.05, InactivityThreshold: 100, ProtectionPeriod: 0},
	})
	require.NoError(t, err)
	s.RecordActivity(0)

	require.False(t, s.ShouldPrune(50), "should not prune before inactivity threshold elapses")
	require.True(t, s.ShouldPrune(200), "expected prune candidacy once weak and inactive")
}
