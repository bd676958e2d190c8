package xlog

import (
	"io"
	"os"
	"sync/atomic"
)

// defaultFactory is installed by a drain package's init (adapter/zerolog
// registers itself) so the root package does not import any drain.
var defaultFactory atomic.Pointer[func(io.Writer) Adapter]

// RegisterDefaultAdapterFactory sets the constructor used by Default.
// The last registration wins.
func RegisterDefaultAdapterFactory(f func(io.Writer) Adapter) {
	if f == nil {
		defaultFactory.Store(nil)
		return
	}
	defaultFactory.Store(&f)
}

// Default builds a Logger at LevelDebug on the registered drain, writing to
// os.Stdout. Side-importing github.com/trickstertwo/xlog-otel/adapter/zerolog
// registers one. Panics if none is registered.
func Default() *Logger {
	return defaultTo(os.Stdout)
}

func defaultTo(w io.Writer) *Logger {
	f := defaultFactory.Load()
	if f == nil {
		panic("xlog: no default adapter registered. Import adapter/zerolog or call xlog.RegisterDefaultAdapterFactory")
	}
	l, _ := NewBuilder().
		WithAdapter((*f)(w)).
		WithMinLevel(LevelDebug).
		Build()
	return l
}

// New builds Default and installs it as the global logger.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseAdapter installs a Logger on a as the global logger and returns it.
func UseAdapter(a Adapter, min Level, observers ...Observer) *Logger {
	b := NewBuilder().WithAdapter(a).WithMinLevel(min)
	for _, o := range observers {
		b.AddObserver(o)
	}
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	SetGlobal(l)
	return l
}
