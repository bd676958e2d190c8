package otel

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fastjson"
	"go.opentelemetry.io/otel/log"
)

// Parsed values are owned by their parser; fromJSON copies everything out
// before the parser goes back to the pool.
var parsers fastjson.ParserPool

// nestedValue converts an arbitrary value into a structured log.Value by
// encoding it as JSON and walking the parsed document. Objects keep their
// encoded key order; integers stay integers when they fit an int64.
func nestedValue(v any) (log.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return log.Value{}, err
	}
	p := parsers.Get()
	defer parsers.Put(p)
	jv, err := p.ParseBytes(b)
	if err != nil {
		return log.Value{}, err
	}
	return fromJSON(jv), nil
}

func fromJSON(v *fastjson.Value) log.Value {
	switch v.Type() {
	case fastjson.TypeObject:
		o, _ := v.Object()
		kvs := make([]log.KeyValue, 0, o.Len())
		o.Visit(func(k []byte, item *fastjson.Value) {
			kvs = append(kvs, log.KeyValue{Key: string(k), Value: fromJSON(item)})
		})
		return log.MapValue(kvs...)
	case fastjson.TypeArray:
		items, _ := v.Array()
		vals := make([]log.Value, len(items))
		for i, item := range items {
			vals[i] = fromJSON(item)
		}
		return log.SliceValue(vals...)
	case fastjson.TypeString:
		return log.StringValue(string(v.GetStringBytes()))
	case fastjson.TypeNumber:
		raw := v.String()
		if !strings.ContainsAny(raw, ".eE") {
			if i, err := v.Int64(); err == nil {
				return log.Int64Value(i)
			}
			return log.StringValue(raw)
		}
		f, _ := v.Float64()
		return log.Float64Value(f)
	case fastjson.TypeTrue:
		return log.BoolValue(true)
	case fastjson.TypeFalse:
		return log.BoolValue(false)
	default:
		return log.Value{}
	}
}
