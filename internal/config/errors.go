package config

import "errors"

var (
	ErrMissingServiceName   = errors.New("service name is required")
	ErrInvalidExporter      = errors.New("unsupported exporter")
	ErrInvalidConsoleFormat = errors.New("unsupported console format")
	ErrInvalidProtocol      = errors.New("unsupported otlp protocol")
	ErrMissingEndpoint      = errors.New("otlp endpoint is required")
	ErrInvalidTimeout       = errors.New("otlp timeout must be positive")
	ErrInvalidCompression   = errors.New("unsupported otlp compression")
)
