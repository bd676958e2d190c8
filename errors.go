package xlog

import "errors"

// ErrNoAdapter is returned by Builder.Build when no Adapter was configured.
var ErrNoAdapter = errors.New("xlog: no adapter configured")

// ErrUnknownLevel is returned by ParseLevel for unrecognized level names.
var ErrUnknownLevel = errors.New("xlog: unknown level")
