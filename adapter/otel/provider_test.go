package otel_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/noop"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	xlog "github.com/trickstertwo/xlog-otel"
	xotel "github.com/trickstertwo/xlog-otel/adapter/otel"
)

// memExporter keeps exported records in memory.
type memExporter struct {
	mu       sync.Mutex
	records  []sdklog.Record
	shutdown bool
}

func (e *memExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *memExporter) Shutdown(context.Context) error {
	e.mu.Lock()
	e.shutdown = true
	e.mu.Unlock()
	return nil
}

func (e *memExporter) ForceFlush(context.Context) error { return nil }

func (e *memExporter) exported() []sdklog.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]sdklog.Record(nil), e.records...)
}

func newSDKProvider(t *testing.T) (*xotel.Provider, *memExporter) {
	t.Helper()
	exp := &memExporter{}
	lp := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exp)))
	p := xotel.NewProvider(lp)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p, exp
}

func attributesOf(r sdklog.Record) map[string]log.Value {
	out := map[string]log.Value{}
	r.WalkAttributes(func(kv log.KeyValue) bool {
		out[kv.Key] = kv.Value
		return true
	})
	return out
}

func TestProviderEmitsThroughSDK(t *testing.T) {
	t.Parallel()

	p, exp := newSDKProvider(t)
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, span := tp.Tracer("test").Start(context.Background(), "doing_work")
	defer span.End()

	res := xotel.Attributes{
		"service.name": log.StringValue("billing"),
		"service":      log.StringValue("from-resource"),
	}
	ad := xotel.NewBuilder(fixedNow).WithResource(res).Build(p)
	logger, err := xlog.NewBuilder().WithAdapter(ad).WithMinLevel(xlog.LevelTrace).Build()
	require.NoError(t, err)

	logger.With(xlog.FStr("service", "x")).Warn().Ctx(ctx).Int("retries", 5).Msg("start")

	recs := exp.exported()
	require.Len(t, recs, 1)
	r := recs[0]

	assert.Equal(t, log.SeverityWarn, r.Severity())
	assert.Equal(t, "WARN", r.SeverityText())
	assert.Equal(t, "start", r.Body().AsString())
	assert.Equal(t, emitTime, r.Timestamp())
	assert.Equal(t, span.SpanContext().TraceID(), r.TraceID())
	assert.Equal(t, span.SpanContext().SpanID(), r.SpanID())

	scope := r.InstrumentationScope()
	assert.Equal(t, xotel.Name, scope.Name)
	assert.Equal(t, xotel.Version, scope.Version)

	attrs := attributesOf(r)
	assert.Equal(t, "x", attrs["service"].AsString(), "record attributes win over resource entries")
	assert.Equal(t, "billing", attrs["service.name"].AsString())
	assert.Equal(t, int64(5), attrs["retries"].AsInt64())
	assert.Contains(t, attrs, "code.lineno")
	assert.Contains(t, attrs, "code.filepath")
	assert.Contains(t, attrs, "code.namespace")
	assert.Contains(t, attrs, "code.function")
}

func TestProviderRejectsAfterShutdown(t *testing.T) {
	t.Parallel()

	p, exp := newSDKProvider(t)
	ad := xotel.NewBuilder(fixedNow).Build(p)

	r := &xlog.Record{Level: xlog.LevelInfo, Message: xlog.Text("before")}
	require.NoError(t, ad.Log(r, nil))
	require.NoError(t, p.Shutdown(context.Background()))
	require.NoError(t, p.Shutdown(context.Background()), "second shutdown is a no-op")

	exp.mu.Lock()
	assert.True(t, exp.shutdown, "shutdown reaches the SDK provider")
	exp.mu.Unlock()

	err := ad.Log(&xlog.Record{Level: xlog.LevelInfo, Message: xlog.Text("after")}, nil)
	require.ErrorIs(t, err, xotel.ErrBackend)
	require.ErrorIs(t, err, xotel.ErrProviderClosed)
	assert.Len(t, exp.exported(), 1)
}

func TestProviderWithoutShutdownSupport(t *testing.T) {
	t.Parallel()

	p := xotel.NewProvider(noop.NewLoggerProvider())
	ad := xotel.NewBuilder(time.Now).Build(p)
	require.NoError(t, ad.Log(&xlog.Record{Message: xlog.Text("x")}, nil))
	require.NoError(t, p.Shutdown(context.Background()))
	require.ErrorIs(t, ad.Log(&xlog.Record{Message: xlog.Text("y")}, nil), xotel.ErrProviderClosed)
}

func TestResourceAttributes(t *testing.T) {
	t.Parallel()

	assert.Nil(t, xotel.ResourceAttributes(nil))

	res := resource.NewSchemaless(
		attribute.String("service.name", "billing"),
		attribute.Int64("replica", 3),
		attribute.Bool("canary", true),
		attribute.Float64("weight", 0.25),
		attribute.StringSlice("zones", []string{"a", "b"}),
		attribute.Int64Slice("ports", []int64{80, 443}),
	)
	got := xotel.ResourceAttributes(res)
	require.Len(t, got, 6)
	assert.Equal(t, "billing", got["service.name"].AsString())
	assert.Equal(t, int64(3), got["replica"].AsInt64())
	assert.True(t, got["canary"].AsBool())
	assert.Equal(t, 0.25, got["weight"].AsFloat64())
	assert.True(t, log.SliceValue(log.StringValue("a"), log.StringValue("b")).Equal(got["zones"]))
	assert.True(t, log.SliceValue(log.Int64Value(80), log.Int64Value(443)).Equal(got["ports"]))
	assert.Equal(t, []string{"canary", "ports", "replica", "service.name", "weight", "zones"}, got.Keys())
}
