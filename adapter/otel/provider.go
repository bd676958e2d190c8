package otel

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

// Provider adapts an OpenTelemetry log.LoggerProvider to EmitterProvider.
type Provider struct {
	lp     log.LoggerProvider
	closed atomic.Bool
}

var _ EmitterProvider = (*Provider)(nil)

// NewProvider wraps lp. lp is typically an *sdklog.LoggerProvider.
func NewProvider(lp log.LoggerProvider) *Provider {
	return &Provider{lp: lp}
}

// Emitter returns an emitter backed by lp.Logger(name) with version as the
// instrumentation scope version.
func (p *Provider) Emitter(name, version string) Emitter {
	return &providerEmitter{p: p, l: p.lp.Logger(name, log.WithInstrumentationVersion(version))}
}

// Shutdown marks the provider closed and shuts down the wrapped provider
// when it supports it. Later calls are no-ops.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s, ok := p.lp.(interface{ Shutdown(context.Context) error }); ok {
		return s.Shutdown(ctx)
	}
	return nil
}

type providerEmitter struct {
	p *Provider
	l log.Logger
}

func (e *providerEmitter) Emit(ctx context.Context, r Record) error {
	if e.p.closed.Load() {
		return ErrProviderClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if r.SpanContext.IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, r.SpanContext)
	}

	var rec log.Record
	rec.SetTimestamp(r.Timestamp)
	rec.SetObservedTimestamp(r.ObservedTimestamp)
	rec.SetSeverity(r.Severity)
	rec.SetSeverityText(r.SeverityText)
	rec.SetBody(r.Body)
	rec.AddAttributes(toKeyValues(r.Attributes, r.Resource)...)

	e.l.Emit(ctx, rec)
	return nil
}

// toKeyValues flattens attrs in key order, then resource entries whose key
// is not already taken. The log API has no per-record resource.
func toKeyValues(attrs, resource Attributes) []log.KeyValue {
	kvs := make([]log.KeyValue, 0, len(attrs)+len(resource))
	for _, k := range attrs.Keys() {
		kvs = append(kvs, log.KeyValue{Key: k, Value: attrs[k]})
	}
	for _, k := range resource.Keys() {
		if _, ok := attrs[k]; ok {
			continue
		}
		kvs = append(kvs, log.KeyValue{Key: k, Value: resource[k]})
	}
	return kvs
}
