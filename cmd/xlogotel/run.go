package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	xlog "github.com/trickstertwo/xlog-otel"
	xlogr "github.com/trickstertwo/xlog-otel/adapter/logr"
	xotel "github.com/trickstertwo/xlog-otel/adapter/otel"
	xslog "github.com/trickstertwo/xlog-otel/adapter/slog"
	xzap "github.com/trickstertwo/xlog-otel/adapter/zap"
	"github.com/trickstertwo/xlog-otel/adapter/zerolog"
	"github.com/trickstertwo/xlog-otel/internal/config"
	"github.com/trickstertwo/xlog-otel/internal/telemetry"
)

const tracerName = "xlogotel"

func run(cmd *cobra.Command, cfg *config.Config) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tel, err := telemetry.New(ctx, cfg, telemetry.WithWriter(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, telemetry.Shutdown(tel, 2*cfg.OTLP.Timeout))
	}()

	logger, err := newLogger(cfg, tel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	tracer := tel.Traces.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "doing_work")
	defer span.End()
	logRecords(ctx, logger)
	return nil
}

// newLogger builds the OTel drain and tees it with a console drain when enabled.
func newLogger(cfg *config.Config, tel *telemetry.Telemetry, console io.Writer) (*xlog.Logger, error) {
	b := xotel.NewBuilder(nil)
	if cfg.Log.Nested {
		b = b.WithNestedValues()
	}
	if cfg.Log.UID {
		b = b.WithRecordUID()
	}
	if cfg.Log.Resource {
		b = b.WithResource(xotel.ResourceAttributes(tel.Resource))
	}
	drains := []xlog.Adapter{b.Build(xotel.NewProvider(tel.Logs))}

	if cfg.Log.Console.Enabled {
		drains = append(drains, consoleDrain(cfg, console))
	}

	return xlog.NewBuilder().
		WithAdapter(xlog.Multi(drains...)).
		WithMinLevel(cfg.MinLevel()).
		WithErrorHandler(func(err error) {
			fmt.Fprintf(console, "xlog error: %v\n", err)
		}).
		Build()
}

// consoleDrain builds the human-readable drain named by log.console.format.
func consoleDrain(cfg *config.Config, w io.Writer) xlog.Adapter {
	switch cfg.Log.Console.Format {
	case config.ConsoleZap:
		return xzap.NewAdapter(xzap.Config{
			Writer:   w,
			MinLevel: cfg.MinLevel(),
			Console:  true,
			Caller:   cfg.Log.Caller,
		})
	case config.ConsoleSlog:
		return xslog.NewAdapter(xslog.Config{
			Writer:   w,
			MinLevel: cfg.MinLevel(),
			Format:   xslog.FormatText,
			Caller:   cfg.Log.Caller,
		})
	default:
		return zerolog.NewAdapter(zerolog.Config{
			Writer:   w,
			MinLevel: cfg.MinLevel(),
			Console:  true,
			Caller:   cfg.Log.Caller,
		})
	}
}

func logRecords(ctx context.Context, l *xlog.Logger) {
	withFields := func(e *xlog.Event) *xlog.Event {
		return e.Ctx(ctx).
			Str("field1", "lorem impsum").
			Int("field2", 1).
			Bool("field3", true).
			Float64("field4", 3.41)
	}

	l.Info().Ctx(ctx).Msg("without fields")
	withFields(l.Info()).Msg("info record with fields")
	withFields(l.Debug()).Msg("debug record with fields")
	withFields(l.Trace()).Msg("trace record with fields")
	withFields(l.Error()).Msg("error record with fields")
	withFields(l.Fatal()).Msg("critical/fatal record with fields")

	xlogr.New(l).WithName(tracerName).V(1).
		Info("logr record with fields", "field1", "lorem impsum", "field2", 1)
}
