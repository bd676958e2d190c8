// Package oteltest provides an in-memory EmitterProvider for tests.
package oteltest

import (
	"context"
	"sync"

	xotel "github.com/trickstertwo/xlog-otel/adapter/otel"
)

// Emission is one record as seen by the Recorder.
type Emission struct {
	Name    string
	Version string
	Ctx     context.Context
	Record  xotel.Record
}

// Recorder captures every emitted record. It is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	emissions []Emission
	reject    error
	shutdowns int
}

var _ xotel.EmitterProvider = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Reject makes every following Emit fail with err; nil accepts again.
func (r *Recorder) Reject(err error) {
	r.mu.Lock()
	r.reject = err
	r.mu.Unlock()
}

// Emitter returns an emitter that records under name and version.
func (r *Recorder) Emitter(name, version string) xotel.Emitter {
	return &emitter{r: r, name: name, version: version}
}

// Shutdown counts calls and never fails.
func (r *Recorder) Shutdown(context.Context) error {
	r.mu.Lock()
	r.shutdowns++
	r.mu.Unlock()
	return nil
}

// Shutdowns reports how many times Shutdown was called.
func (r *Recorder) Shutdowns() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shutdowns
}

// Emissions returns a copy of everything recorded so far.
func (r *Recorder) Emissions() []Emission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Emission(nil), r.emissions...)
}

// Records returns the recorded records in emission order.
func (r *Recorder) Records() []xotel.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]xotel.Record, len(r.emissions))
	for i, e := range r.emissions {
		out[i] = e.Record
	}
	return out
}

// Reset drops recorded emissions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.emissions = nil
	r.mu.Unlock()
}

type emitter struct {
	r       *Recorder
	name    string
	version string
}

func (e *emitter) Emit(ctx context.Context, rec xotel.Record) error {
	e.r.mu.Lock()
	defer e.r.mu.Unlock()
	if e.r.reject != nil {
		return e.r.reject
	}
	e.r.emissions = append(e.r.emissions, Emission{Name: e.name, Version: e.version, Ctx: ctx, Record: rec})
	return nil
}
