package otel

import "errors"

// ErrSerialize is returned when a field could not be converted, either
// because an ObjectMarshaler failed or a nested value could not be encoded.
// Nothing is emitted.
var ErrSerialize = errors.New("xlog/otel: field serialization failed")

// ErrBackend is returned when the Emitter rejects a record. It is not retried.
var ErrBackend = errors.New("xlog/otel: backend rejected record")

// ErrProviderClosed is returned by emitters of a Provider that was shut down.
var ErrProviderClosed = errors.New("xlog/otel: provider is shut down")
