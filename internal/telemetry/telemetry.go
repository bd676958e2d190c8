// Package telemetry builds the OpenTelemetry log and trace providers used by
// the xlogotel command.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/trickstertwo/xlog-otel/internal/config"
)

// DefaultShutdownTimeout bounds Shutdown when no positive timeout is given.
const DefaultShutdownTimeout = 10 * time.Second

// ErrInvalidProtocol is returned for an OTLP protocol other than grpc or http.
var ErrInvalidProtocol = errors.New("telemetry: protocol must be either 'http' or 'grpc'")

// ErrInvalidExporter is returned for an exporter other than stdout or otlp.
var ErrInvalidExporter = errors.New("telemetry: exporter must be either 'stdout' or 'otlp'")

// Telemetry owns a log provider and a tracer provider sharing one resource.
type Telemetry struct {
	Resource *resource.Resource
	Logs     *sdklog.LoggerProvider
	Traces   *sdktrace.TracerProvider

	mu   sync.Mutex
	done bool
}

type options struct {
	out io.Writer
}

// Option tunes New.
type Option func(*options)

// WithWriter redirects the stdout exporters to w.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// New builds both providers for cfg. Records and spans are exported
// synchronously as they are emitted.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Telemetry, error) {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	res, err := newResource(cfg.Service)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	logExp, err := newLogExporter(ctx, cfg, o.out)
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}
	spanExp, err := newSpanExporter(ctx, cfg, o.out)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("failed to create trace exporter: %w", err),
			logExp.Shutdown(ctx),
		)
	}

	return &Telemetry{
		Resource: res,
		Logs: sdklog.NewLoggerProvider(
			sdklog.WithResource(res),
			sdklog.WithProcessor(sdklog.NewSimpleProcessor(logExp)),
		),
		Traces: sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSyncer(spanExp),
		),
	}, nil
}

func newResource(svc config.ServiceConfig) (*resource.Resource, error) {
	custom := resource.NewSchemaless(
		semconv.ServiceName(svc.Name),
		semconv.ServiceVersion(svc.Version),
	)
	return resource.Merge(resource.Default(), custom)
}

func newLogExporter(ctx context.Context, cfg *config.Config, out io.Writer) (sdklog.Exporter, error) {
	switch cfg.Exporter {
	case config.ExporterStdout:
		return stdoutlog.New(stdoutlog.WithWriter(out), stdoutlog.WithPrettyPrint())
	case config.ExporterOTLP:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExporter, cfg.Exporter)
	}

	o := cfg.OTLP
	switch o.Protocol {
	case config.ProtocolGRPC:
		opts := []otlploggrpc.Option{
			otlploggrpc.WithEndpoint(o.Endpoint),
			otlploggrpc.WithTimeout(o.Timeout),
		}
		if o.Compression == config.CompressionGzip {
			opts = append(opts, otlploggrpc.WithCompressor(config.CompressionGzip))
		}
		if o.Insecure {
			opts = append(opts, otlploggrpc.WithTLSCredentials(insecure.NewCredentials()))
		}
		return otlploggrpc.New(ctx, opts...)
	case config.ProtocolHTTP:
		opts := []otlploghttp.Option{
			otlploghttp.WithEndpoint(o.Endpoint),
			otlploghttp.WithTimeout(o.Timeout),
			otlploghttp.WithCompression(otlploghttp.NoCompression),
		}
		if o.Compression == config.CompressionGzip {
			opts = append(opts, otlploghttp.WithCompression(otlploghttp.GzipCompression))
		}
		if o.Insecure {
			opts = append(opts, otlploghttp.WithInsecure())
		}
		return otlploghttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("log protocol '%s': %w", o.Protocol, ErrInvalidProtocol)
	}
}

func newSpanExporter(ctx context.Context, cfg *config.Config, out io.Writer) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case config.ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
	case config.ExporterOTLP:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExporter, cfg.Exporter)
	}

	o := cfg.OTLP
	switch o.Protocol {
	case config.ProtocolGRPC:
		opts := []otlptracegrpc.Option{
			otlptracegrpc.WithEndpoint(o.Endpoint),
			otlptracegrpc.WithTimeout(o.Timeout),
		}
		if o.Compression == config.CompressionGzip {
			opts = append(opts, otlptracegrpc.WithCompressor(config.CompressionGzip))
		}
		if o.Insecure {
			opts = append(opts, otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()))
		}
		return otlptracegrpc.New(ctx, opts...)
	case config.ProtocolHTTP:
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(o.Endpoint),
			otlptracehttp.WithTimeout(o.Timeout),
			otlptracehttp.WithCompression(otlptracehttp.NoCompression),
		}
		if o.Compression == config.CompressionGzip {
			opts = append(opts, otlptracehttp.WithCompression(otlptracehttp.GzipCompression))
		}
		if o.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("trace protocol '%s': %w", o.Protocol, ErrInvalidProtocol)
	}
}

// Shutdown flushes and stops both providers. Later calls are no-ops.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true

	var errs []error
	if err := t.Traces.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown trace provider: %w", err))
	}
	if err := t.Logs.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown log provider: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(errs...))
	}
	return nil
}

// Shutdown calls t.Shutdown under a timeout.
func Shutdown(t *Telemetry, timeout time.Duration) error {
	if t == nil {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := t.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry shutdown failed: %w", err)
	}
	return nil
}
