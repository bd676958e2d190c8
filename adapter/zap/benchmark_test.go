package zap

import (
	"io"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xlog "github.com/trickstertwo/xlog-otel"
)

func newBenchZap() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "", // disable zap own ts
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zapcore.InfoLevel)
	return zap.New(core)
}

func benchAdapter(b *testing.B, zl *zap.Logger, fields []xlog.Field, bound []xlog.Field) {
	var a xlog.Adapter = New(zl)
	if len(bound) > 0 {
		a = a.With(bound)
	}

	r := &xlog.Record{
		Level:   xlog.LevelInfo,
		Message: xlog.Text("bench"),
		At:      time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Log(r, fields)
	}
}

func BenchmarkZapAdapter_JSON_5Fields(b *testing.B) {
	zl := newBenchZap()
	fields := []xlog.Field{
		xlog.FStr("a", "b"),
		xlog.FInt64("i", 42),
		xlog.FBool("ok", true),
		xlog.FDur("dur", time.Millisecond),
		xlog.FFloat("f", 3.14),
	}
	benchAdapter(b, zl, fields, nil)
}

func BenchmarkZapAdapter_JSON_WithBound(b *testing.B) {
	zl := newBenchZap()
	fields := []xlog.Field{
		xlog.FStr("a", "b"),
		xlog.FInt64("i", 42),
	}
	bound := []xlog.Field{
		xlog.FStr("svc", "api"),
		xlog.FStr("ver", "1.0.0"),
		xlog.FStr("region", "eu-west-1"),
	}
	benchAdapter(b, zl, fields, bound)
}
