package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrainDueAtPartitionsByArrivalTime(t *testing.T) {
	q := NewQueue()
	q.Enqueue(SpikeEvent{SourceIndex: 0, TargetIndex: 1, ArrivalTime: 5})
	q.Enqueue(SpikeEvent{SourceIndex: 0, TargetIndex: 2, ArrivalTime: 10})
	q.Enqueue(SpikeEvent{SourceIndex: 1, TargetIndex: 2, ArrivalTime: 15})

	due := q.DrainDueAt(10)
	require.Len(t, due, 2, "expected 2 due events at t=10")
	require.Equal(t, 1, q.Len(), "expected 1 remaining event")

	due = q.DrainDueAt(15)
	require.Len(t, due, 1)
	require.Equal(t, 15.0, due[0].ArrivalTime, "expected the last event to be delivered at t=15")
	require.Zero(t, q.Len(), "expected empty queue after all events delivered")
}

func TestEveryEventDeliveredExactlyOnce(t *testing.T) {
	q := NewQueue()
	for tick := 1; tick <= 20; tick++ {
		q.Enqueue(SpikeEvent{ArrivalTime: float64(tick)})
	}

	delivered := 0
	for step := 1.0; step <= 20; step += 1.0 {
		delivered += len(q.DrainDueAt(step))
	}
	require.Equal(t, 20, delivered, "expected exactly 20 deliveries")
	require.Zero(t, q.Len(), "expected empty queue")
}

func TestClearDiscardsPending(t *testing.T) {
	q := NewQueue()
	q.Enqueue(SpikeEvent{ArrivalTime: 100})
	q.Clear()
	require.Zero(t, q.Len(), "expected empty queue after Clear")
	require.Empty(t, q.DrainDueAt(1000), "expected no events delivered after Clear")
}
