package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	xlog "github.com/trickstertwo/xlog-otel"
	xotel "github.com/trickstertwo/xlog-otel/adapter/otel"
	"github.com/trickstertwo/xlog-otel/internal/config"
)

func testConfig(exporter, protocol string) *config.Config {
	return &config.Config{
		Service:  config.ServiceConfig{Name: "telemetry-test", Version: "v9.9.9"},
		Log:      config.LogConfig{Level: "trace"},
		Exporter: exporter,
		OTLP: config.OTLPConfig{
			Protocol:    protocol,
			Endpoint:    "127.0.0.1:4317",
			Insecure:    true,
			Timeout:     100 * time.Millisecond,
			Compression: config.CompressionGzip,
		},
	}
}

func TestStdoutExportsLogsAndSpans(t *testing.T) {
	var buf bytes.Buffer
	tel, err := New(context.Background(), testConfig(config.ExporterStdout, ""), WithWriter(&buf))
	require.NoError(t, err)

	logger, err := xlog.NewBuilder().
		WithAdapter(xotel.NewBuilder(nil).Build(xotel.NewProvider(tel.Logs))).
		WithMinLevel(xlog.LevelTrace).
		Build()
	require.NoError(t, err)

	ctx, span := tel.Traces.Tracer("telemetry-test").Start(context.Background(), "doing_work")
	logger.Info().Ctx(ctx).Str("field1", "lorem impsum").Msg("info record with fields")
	span.End()

	require.NoError(t, tel.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "info record with fields")
	assert.Contains(t, out, "lorem impsum")
	assert.Contains(t, out, "doing_work")
	assert.Contains(t, out, span.SpanContext().TraceID().String())
}

func TestResourceCarriesService(t *testing.T) {
	tel, err := New(context.Background(), testConfig(config.ExporterStdout, ""), WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	defer func() { _ = Shutdown(tel, time.Second) }()

	attrs := xotel.ResourceAttributes(tel.Resource)
	assert.Equal(t, "telemetry-test", attrs[string(semconv.ServiceNameKey)].AsString())
	assert.Equal(t, "v9.9.9", attrs[string(semconv.ServiceVersionKey)].AsString())
}

func TestOTLPProtocols(t *testing.T) {
	for _, protocol := range []string{config.ProtocolGRPC, config.ProtocolHTTP} {
		t.Run(protocol, func(t *testing.T) {
			tel, err := New(context.Background(), testConfig(config.ExporterOTLP, protocol))
			require.NoError(t, err)
			require.NotNil(t, tel.Logs)
			require.NotNil(t, tel.Traces)
			assert.NoError(t, Shutdown(tel, time.Second))
		})
	}
}

func TestInvalidSettings(t *testing.T) {
	_, err := New(context.Background(), testConfig("kafka", ""))
	assert.ErrorIs(t, err, ErrInvalidExporter)

	_, err = New(context.Background(), testConfig(config.ExporterOTLP, "thrift"))
	assert.ErrorIs(t, err, ErrInvalidProtocol)
}

func TestShutdownIsIdempotent(t *testing.T) {
	tel, err := New(context.Background(), testConfig(config.ExporterStdout, ""), WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)

	require.NoError(t, tel.Shutdown(context.Background()))
	assert.NoError(t, tel.Shutdown(context.Background()))
	assert.NoError(t, Shutdown(nil, 0))
}
