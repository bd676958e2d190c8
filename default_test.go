package xlog

import (
	"io"
	"testing"
)

func TestDefaultUsesRegisteredFactory(t *testing.T) {
	prev := defaultFactory.Load()
	prevGlobal := global.Load()
	t.Cleanup(func() {
		defaultFactory.Store(prev)
		global.Store(prevGlobal)
	})

	var got io.Writer
	sink := &levelSink{stubAdapter: *newStubAdapter(nil), min: LevelError}
	RegisterDefaultAdapterFactory(func(w io.Writer) Adapter {
		got = w
		return sink
	})

	l := New()
	if L() != l {
		t.Fatalf("New did not install the global logger")
	}
	if got == nil {
		t.Fatalf("factory was not called with a writer")
	}
	if sink.min != LevelDebug {
		t.Fatalf("adapter min level = %v, want DEBUG", sink.min)
	}

	l.Trace().Msg("dropped")
	l.Debug().Msg("kept")
	if n := len(sink.entries()); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}
}

func TestDefaultPanicsWithoutFactory(t *testing.T) {
	prev := defaultFactory.Load()
	t.Cleanup(func() { defaultFactory.Store(prev) })
	RegisterDefaultAdapterFactory(nil)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Default()
}

func TestUseAdapterInstallsObservers(t *testing.T) {
	prevGlobal := global.Load()
	t.Cleanup(func() { global.Store(prevGlobal) })

	var seen []string
	adapter := newStubAdapter(nil)
	l := UseAdapter(adapter, LevelWarn, ObserverFunc(func(e Entry) {
		seen = append(seen, e.Message)
	}))
	if L() != l {
		t.Fatalf("UseAdapter did not install the global logger")
	}

	Info().Msg("below")
	Warn().Str("k", "v").Msg("above")

	if len(seen) != 1 || seen[0] != "above" {
		t.Fatalf("observer saw %v", seen)
	}
	if n := len(adapter.entries()); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}
}
