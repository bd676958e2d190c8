package xlog

import "errors"

// multiAdapter fans each record out to several drains, e.g. a console
// drain next to the OpenTelemetry drain.
type multiAdapter []Adapter

// Multi returns an Adapter that logs to every non-nil adapter in order.
// Every adapter sees every record; their errors are joined.
func Multi(adapters ...Adapter) Adapter {
	out := make(multiAdapter, 0, len(adapters))
	for _, a := range adapters {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

func (m multiAdapter) Log(r *Record, fields []Field) error {
	var errs []error
	for _, a := range m {
		if err := a.Log(r, fields); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multiAdapter) With(fields []Field) Adapter {
	child := make(multiAdapter, len(m))
	for i, a := range m {
		child[i] = a.With(fields)
	}
	return child
}

// SetMinLevel forwards to adapters that accept a min level.
func (m multiAdapter) SetMinLevel(l Level) {
	for _, a := range m {
		if ls, ok := a.(adapterLevelSetter); ok {
			ls.SetMinLevel(l)
		}
	}
}
