package xlog

import (
	"runtime"
	"strings"
)

// Source is the call site of a log event.
type Source struct {
	File     string
	Line     int
	Module   string // package import path
	Function string // qualified name within Module; empty when unresolved
}

// CallerSource resolves the call site skip frames above its caller.
// CallerSource(0) describes the function that called CallerSource.
func CallerSource(skip int) Source {
	var pc [1]uintptr
	if runtime.Callers(skip+2, pc[:]) == 0 {
		return Source{}
	}
	frame, _ := runtime.CallersFrames(pc[:]).Next()
	mod, fn := splitFuncName(frame.Function)
	return Source{File: frame.File, Line: frame.Line, Module: mod, Function: fn}
}

// splitFuncName splits "example.com/a/pkg.(*T).M" into
// ("example.com/a/pkg", "(*T).M").
func splitFuncName(name string) (module, function string) {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name, ""
	}
	dot += slash + 1
	return name[:dot], name[dot+1:]
}
