package zerolog

import (
	"io"
	"os"

	xlog "github.com/trickstertwo/xlog-otel"
)

// Env:
//
//	XLOG_MIN_LEVEL or XLOG_LEVEL: trace|debug|info|warn|error|fatal
//	XLOG_CONSOLE=1               : enable ConsoleWriter (pretty output)
//	XLOG_CALLER=1                : include the call site
//	XLOG_CONSOLE_TIMEFORMAT=...  : optional console time layout (default RFC3339Nano)
func init() {
	xlog.RegisterDefaultAdapterFactory(func(w io.Writer) xlog.Adapter {
		// Unknown names fall back to info.
		level, _ := xlog.ParseLevel(firstNonEmpty(os.Getenv("XLOG_MIN_LEVEL"), os.Getenv("XLOG_LEVEL")))
		return NewAdapter(Config{
			Writer:            w,
			MinLevel:          level,
			Console:           os.Getenv("XLOG_CONSOLE") == "1",
			ConsoleTimeFormat: os.Getenv("XLOG_CONSOLE_TIMEFORMAT"),
			Caller:            os.Getenv("XLOG_CALLER") == "1",
		})
	})
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
