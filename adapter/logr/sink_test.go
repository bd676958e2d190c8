package logr_test

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xlog "github.com/trickstertwo/xlog-otel"
	xlogr "github.com/trickstertwo/xlog-otel/adapter/logr"
	xotel "github.com/trickstertwo/xlog-otel/adapter/otel"
	"github.com/trickstertwo/xlog-otel/adapter/otel/oteltest"
)

func newSink(t *testing.T, min xlog.Level) (*oteltest.Recorder, *xlog.Logger) {
	t.Helper()
	rec := oteltest.NewRecorder()
	ad := xotel.NewBuilder(time.Now).Build(rec)
	l, err := xlog.NewBuilder().WithAdapter(ad).WithMinLevel(min).Build()
	require.NoError(t, err)
	return rec, l
}

func TestVerbosityMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, xlog.LevelInfo, xlogr.Level(0))
	assert.Equal(t, xlog.LevelDebug, xlogr.Level(1))
	assert.Equal(t, xlog.LevelTrace, xlogr.Level(2))
	assert.Equal(t, xlog.LevelTrace, xlogr.Level(9))
}

func TestInfoAndErrorReachTheDrain(t *testing.T) {
	t.Parallel()

	rec, l := newSink(t, xlog.LevelDebug)
	log := xlogr.New(l).WithName("controller").WithName("pods").WithValues("namespace", "default")

	_, _, line, _ := runtime.Caller(0)
	log.Info("reconciled", "count", 3, "took", 2*time.Second)
	log.V(1).Info("details")
	log.V(2).Info("too verbose")
	log.Error(errors.New("conflict"), "update failed", "retry", true)

	recs := rec.Records()
	require.Len(t, recs, 3)

	info := recs[0]
	assert.Equal(t, "INFO", info.SeverityText)
	assert.Equal(t, "reconciled", info.Body.AsString())
	assert.Equal(t, "controller/pods", info.Attributes[xlogr.NameKey].AsString())
	assert.Equal(t, "default", info.Attributes["namespace"].AsString())
	assert.Equal(t, int64(3), info.Attributes["count"].AsInt64())
	assert.Equal(t, "2s", info.Attributes["took"].AsString())
	assert.Equal(t, int64(line+1), info.Attributes["code.lineno"].AsInt64(), "call site is the logr caller")
	assert.Equal(t, "TestInfoAndErrorReachTheDrain", info.Attributes["code.function"].AsString())

	assert.Equal(t, "DEBUG", recs[1].SeverityText)

	failed := recs[2]
	assert.Equal(t, "ERROR", failed.SeverityText)
	assert.Equal(t, "conflict", failed.Attributes["error"].AsString())
	assert.True(t, failed.Attributes["retry"].AsBool())
}

func TestEnabledFollowsMinLevel(t *testing.T) {
	t.Parallel()

	_, l := newSink(t, xlog.LevelInfo)
	log := xlogr.New(l)
	assert.True(t, log.Enabled())
	assert.False(t, log.V(1).Enabled())
}

func TestOddKeyValuesAndCallDepth(t *testing.T) {
	t.Parallel()

	rec, l := newSink(t, xlog.LevelInfo)
	log := xlogr.New(l)

	helper := func(msg string) {
		log.WithCallDepth(1).Info(msg, 42, "answer", "dangling")
	}
	_, _, line, _ := runtime.Caller(0)
	helper("from helper")

	r := rec.Records()[0]
	assert.Equal(t, "answer", r.Attributes["42"].AsString())
	assert.Equal(t, "<no-value>", r.Attributes["dangling"].AsString())
	assert.Equal(t, int64(line+1), r.Attributes["code.lineno"].AsInt64())
}

type lease struct{ holder string }

func (l *lease) MarshalLogObject(s xlog.Serializer) error {
	return s.EmitString("holder", l.holder)
}

func TestNilObjectValuesDoNotPanic(t *testing.T) {
	t.Parallel()

	rec, l := newSink(t, xlog.LevelInfo)
	var none *lease
	require.NotPanics(t, func() {
		xlogr.New(l).WithValues("bound", none).Info("renewed", "obj", none, "live", &lease{holder: "node-a"})
	})

	recs := rec.Records()
	require.Len(t, recs, 1)
	attrs := recs[0].Attributes
	assert.Equal(t, "<nil>", attrs["bound"].AsString())
	assert.Equal(t, "<nil>", attrs["obj"].AsString())
	assert.Equal(t, "node-a", attrs["live.holder"].AsString())
}
