// Package otel is an xlog drain that converts each log event into an
// OpenTelemetry log record and hands it to an Emitter.
//
// Every record carries the call site as code.* attributes, the logger's
// bound fields followed by the call-site fields (later writes win), a
// severity derived from the xlog level, the message as body, the span
// context found in the event's context and an optional resource.
//
//	provider := otel.NewProvider(sdkLoggerProvider)
//	drain := otel.NewBuilder(time.Now).Build(provider)
//	logger := xlog.UseAdapter(drain, xlog.LevelInfo)
//	logger.Info().Ctx(ctx).Int("retries", 5).Msg("start")
package otel
