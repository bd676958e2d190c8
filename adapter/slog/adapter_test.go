package slog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	xlog "github.com/trickstertwo/xlog-otel"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	return m
}

func TestSlogAdapter_JSONHandler_EmitsTSAndFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	a := New(slog.New(h))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	fields := []xlog.Field{
		xlog.FStr("from", "old"),
		xlog.FInt64("count", 2),
		xlog.FUint128("big", xlog.MaxUint128),
		xlog.FInt8("small", -1),
	}
	if err := a.Log(&xlog.Record{Level: xlog.LevelInfo, Message: xlog.Text("state changed"), At: at}, fields); err != nil {
		t.Fatalf("log: %v", err)
	}

	m := decode(t, &buf)

	// Verify adapter-provided timestamp "ts" equals our 'at'
	if got, want := m["ts"], at.Format(time.RFC3339Nano); got != want {
		t.Fatalf("ts mismatch: got %q want %q", got, want)
	}
	if _, ok := m[slog.TimeKey]; ok {
		t.Fatalf("handler time must be omitted: %v", m)
	}
	if m["from"] != "old" {
		t.Fatalf("from mismatch: got %v", m["from"])
	}
	// Slog JSON handler numbers become float64 in generic map
	if m["count"] != float64(2) {
		t.Fatalf("count mismatch: got %v", m["count"])
	}
	if m["big"] != "340282366920938463463374607431768211455" {
		t.Fatalf("big mismatch: got %v", m["big"])
	}
	if m["small"] != float64(-1) {
		t.Fatalf("small mismatch: got %v", m["small"])
	}
	if m["msg"] != "state changed" || m["level"] != "INFO" {
		t.Fatalf("msg/level mismatch: %v", m)
	}
}

func TestSlogAdapter_WithPreBindsAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := New(slog.New(slog.NewJSONHandler(&buf, nil))).With([]xlog.Field{xlog.FStr("svc", "api")})

	r := &xlog.Record{Level: xlog.LevelWarn, Message: xlog.Sprintf("retry %d", 3)}
	if err := a.Log(r, []xlog.Field{xlog.FStr("path", "/x")}); err != nil {
		t.Fatalf("log: %v", err)
	}
	m := decode(t, &buf)
	if m["svc"] != "api" || m["path"] != "/x" || m["msg"] != "retry 3" {
		t.Fatalf("unexpected entry: %v", m)
	}
}

func TestSlogAdapter_ConfigLevelAndSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := NewAdapter(Config{Writer: &buf, MinLevel: xlog.LevelWarn, Caller: true})

	src := xlog.Source{File: "/src/main.go", Line: 7, Module: "example.com/app", Function: "main"}
	_ = a.Log(&xlog.Record{Level: xlog.LevelInfo, Message: xlog.Text("quiet"), Source: src}, nil)
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered: %s", buf.String())
	}

	a.SetMinLevel(xlog.LevelDebug)
	_ = a.Log(&xlog.Record{Level: xlog.LevelDebug, Message: xlog.Text("loud"), Source: src, Ctx: context.Background()}, nil)
	m := decode(t, &buf)
	source, _ := m[slog.SourceKey].(map[string]any)
	if source["file"] != "/src/main.go" || source["line"] != float64(7) || source["function"] != "example.com/app.main" {
		t.Fatalf("source mismatch: %v", m)
	}
}

func TestSlogAdapter_TextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := NewTextLogger(&buf, xlog.LevelInfo, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	l.Info().Str("k", "v").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "k=v") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

type failingHandler struct{ slog.Handler }

var errSink = errors.New("sink down")

func (failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (failingHandler) Handle(context.Context, slog.Record) error { return errSink }

func TestSlogAdapter_HandlerErrorIsReturned(t *testing.T) {
	t.Parallel()

	a := New(slog.New(failingHandler{}))
	err := a.Log(&xlog.Record{Level: xlog.LevelError, Message: xlog.Text("x")}, nil)
	if !errors.Is(err, errSink) {
		t.Fatalf("expected errSink, got %v", err)
	}
}
