// Command xlogotel logs a fixed set of records inside a span and exports
// them through OpenTelemetry, either to stdout or to an OTLP collector.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
