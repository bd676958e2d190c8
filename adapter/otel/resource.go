package otel

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/sdk/resource"
)

// ResourceAttributes converts an SDK resource into a map suitable for
// Builder.WithResource. A nil resource yields nil.
func ResourceAttributes(res *resource.Resource) Attributes {
	if res == nil {
		return nil
	}
	out := make(Attributes, res.Len())
	for iter := res.Iter(); iter.Next(); {
		kv := iter.Attribute()
		out[string(kv.Key)] = attributeValue(kv.Value)
	}
	return out
}

func attributeValue(v attribute.Value) log.Value {
	switch v.Type() {
	case attribute.BOOL:
		return log.BoolValue(v.AsBool())
	case attribute.INT64:
		return log.Int64Value(v.AsInt64())
	case attribute.FLOAT64:
		return log.Float64Value(v.AsFloat64())
	case attribute.STRING:
		return log.StringValue(v.AsString())
	case attribute.BOOLSLICE:
		return sliceOf(v.AsBoolSlice(), log.BoolValue)
	case attribute.INT64SLICE:
		return sliceOf(v.AsInt64Slice(), log.Int64Value)
	case attribute.FLOAT64SLICE:
		return sliceOf(v.AsFloat64Slice(), log.Float64Value)
	case attribute.STRINGSLICE:
		return sliceOf(v.AsStringSlice(), log.StringValue)
	default:
		return log.StringValue(v.Emit())
	}
}

func sliceOf[T any](in []T, conv func(T) log.Value) log.Value {
	out := make([]log.Value, len(in))
	for i, x := range in {
		out[i] = conv(x)
	}
	return log.SliceValue(out...)
}
