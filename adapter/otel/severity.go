package otel

import (
	"go.opentelemetry.io/otel/log"

	xlog "github.com/trickstertwo/xlog-otel"
)

// fatalText is the severity text of the top bucket. Collectors key alerting
// on CRITICAL rather than xlog's FATAL name.
const fatalText = "CRITICAL"

// Severity maps an xlog level to the OpenTelemetry severity number and text.
// Non-canonical levels are bucketed upward first, so the mapping is total
// and preserves order.
func Severity(l xlog.Level) (log.Severity, string) {
	c := l.Canonical()
	switch c {
	case xlog.LevelTrace:
		return log.SeverityTrace, c.String()
	case xlog.LevelDebug:
		return log.SeverityDebug, c.String()
	case xlog.LevelInfo:
		return log.SeverityInfo, c.String()
	case xlog.LevelWarn:
		return log.SeverityWarn, c.String()
	case xlog.LevelError:
		return log.SeverityError, c.String()
	default:
		return log.SeverityFatal, fatalText
	}
}
