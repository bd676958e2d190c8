package xlog

import (
	"context"
	"time"
)

// Record is a single log event as handed to an Adapter.
type Record struct {
	Level   Level
	Message Args
	Source  Source
	// At is the Logger's authoritative timestamp for the event.
	At time.Time
	// Ctx is the context attached with Event.Ctx, or nil.
	Ctx context.Context
}

// Context returns r.Ctx, or context.Background() when unset.
func (r *Record) Context() context.Context {
	if r.Ctx == nil {
		return context.Background()
	}
	return r.Ctx
}

// Adapter is the logging backend Strategy (a drain).
// Log receives the record plus the per-call fields; fields bound with With
// are the adapter's own and precede them. The fields slice is only valid for
// the duration of the call.
type Adapter interface {
	Log(r *Record, fields []Field) error
	With(fields []Field) Adapter // return a child adapter with bound fields (do not mutate receiver)
}
