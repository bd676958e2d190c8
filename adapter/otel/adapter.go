package otel

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	xlog "github.com/trickstertwo/xlog-otel"
)

// RecordUIDKey holds the per-record UUID when WithRecordUID is set.
const RecordUIDKey = "log.record.uid"

var (
	keyLine      = string(semconv.CodeLineNumberKey)
	keyFile      = string(semconv.CodeFilepathKey)
	keyNamespace = string(semconv.CodeNamespaceKey)
	keyFunction  = string(semconv.CodeFunctionKey)
)

// config is immutable after Build and shared by all children.
type config struct {
	now         func() time.Time
	resource    Attributes
	nested      bool
	recordUID   bool
	spanContext SpanContextFunc
}

// Adapter implements xlog.Adapter on top of an Emitter.
// It is safe for concurrent use; every Log call owns its attributes and record.
type Adapter struct {
	cfg     *config
	emitter Emitter
	st      *stats
	bound   []xlog.Field
}

var _ xlog.Adapter = (*Adapter)(nil)

// With returns a child that serializes fs before call-site fields.
// Configuration, emitter and counters are shared with the parent.
func (a *Adapter) With(fs []xlog.Field) xlog.Adapter {
	child := *a
	child.bound = make([]xlog.Field, 0, len(a.bound)+len(fs))
	child.bound = append(append(child.bound, a.bound...), fs...)
	return &child
}

// Log converts r and emits exactly one record, or none when an error is
// returned.
func (a *Adapter) Log(r *xlog.Record, fields []xlog.Field) error {
	ctx := r.Context()
	sc := a.cfg.spanContext(ctx)

	attrs := make(Attributes, len(a.bound)+len(fields)+5)
	attrs[keyLine] = log.IntValue(r.Source.Line)
	attrs[keyFile] = log.StringValue(r.Source.File)
	attrs[keyNamespace] = log.StringValue(r.Source.Module)
	if r.Source.Function != "" {
		attrs[keyFunction] = log.StringValue(r.Source.Function)
	}
	if a.cfg.recordUID {
		if id, err := uuid.NewV7(); err == nil {
			attrs[RecordUIDKey] = log.StringValue(id.String())
		}
	}

	s := attrSerializer{attrs: attrs, nested: a.cfg.nested}
	if err := xlog.Fields(a.bound).Serialize(&s); err != nil {
		a.st.serializeFailures.Add(1)
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	if err := xlog.Fields(fields).Serialize(&s); err != nil {
		a.st.serializeFailures.Add(1)
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	sev, text := Severity(r.Level)
	ts := a.cfg.now()
	observed := r.At
	if observed.IsZero() {
		observed = ts
	}

	rec := Record{
		SpanContext:       sc,
		Timestamp:         ts,
		ObservedTimestamp: observed,
		Severity:          sev,
		SeverityText:      text,
		Body:              body(r.Message),
		Attributes:        attrs,
		Resource:          a.cfg.resource.Clone(),
	}
	if err := a.emitter.Emit(ctx, rec); err != nil {
		a.st.rejected.Add(1)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	a.st.emitted.Add(1)
	return nil
}

// Stats returns the counters shared by this adapter and its children.
func (a *Adapter) Stats() StatsSnapshot { return a.st.snapshot() }

// ResetStats zeroes the counters.
func (a *Adapter) ResetStats() { a.st.reset() }

func body(m xlog.Args) log.Value { return log.StringValue(m.String()) }
