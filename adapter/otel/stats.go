package otel

import "sync/atomic"

type stats struct {
	emitted           atomic.Uint64
	serializeFailures atomic.Uint64
	rejected          atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Emitted           uint64
	SerializeFailures uint64
	BackendRejections uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Emitted:           s.emitted.Load(),
		SerializeFailures: s.serializeFailures.Load(),
		BackendRejections: s.rejected.Load(),
	}
}

func (s *stats) reset() {
	s.emitted.Store(0)
	s.serializeFailures.Store(0)
	s.rejected.Store(0)
}
