// Package simulator paces a network.Network against wall-clock time,
// batching engine steps per observer notification (spec.md §4.7).
//
// The ticker/goroutine/context lifecycle is grounded in the teacher's
// glial.BasicProcessingMonitor.monitoringLoop: a time.Ticker driving a
// select loop that exits on context cancellation, with a sync.WaitGroup the
// caller blocks on to guarantee the goroutine -- and therefore the ticker --
// is actually gone before the call that stopped it returns. That guarantee
// is spec.md §9's "scoped acquisition": play() acquires the ticker, and
// pause()/reset() release it on every exit path, including when the
// observer panics.
package simulator
