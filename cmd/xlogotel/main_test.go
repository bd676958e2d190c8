package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xlog "github.com/trickstertwo/xlog-otel"
	"github.com/trickstertwo/xlog-otel/internal/config"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestMain_stdout(t *testing.T) {
	out, _, err := execute(t, "stdout", "--console=false")
	require.NoError(t, err)

	for _, want := range []string{
		"without fields",
		"info record with fields",
		"debug record with fields",
		"trace record with fields",
		"error record with fields",
		"critical/fatal record with fields",
		"logr record with fields",
		"lorem impsum",
		"CRITICAL",
		"doing_work",
	} {
		assert.Contains(t, out, want)
	}
}

func TestMain_stdout_level(t *testing.T) {
	out, _, err := execute(t, "stdout", "--console=false", "--level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "error record with fields")
	assert.Contains(t, out, "critical/fatal record with fields")
	assert.NotContains(t, out, "info record with fields")
	assert.NotContains(t, out, "logr record with fields")
}

func TestMain_console(t *testing.T) {
	_, errOut, err := execute(t, "stdout", "--level", "info")
	require.NoError(t, err)
	assert.Contains(t, errOut, "info record with fields")
	assert.NotContains(t, errOut, "debug record with fields")
}

func TestMain_console_format(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "zerolog", want: "INF"},
		{format: "zap", want: "info"},
		{format: "slog", want: `msg="info record with fields"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, errOut, err := execute(t, "stdout", "--level", "info", "--console-format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, errOut, "info record with fields")
			assert.Contains(t, errOut, tt.want)
			assert.NotContains(t, errOut, "debug record with fields")
			// The OTel export is unaffected by the console choice.
			assert.Contains(t, out, "info record with fields")
		})
	}
}

func TestMain_invalid_console_format(t *testing.T) {
	_, _, err := execute(t, "stdout", "--console-format", "logrus")
	assert.ErrorIs(t, err, config.ErrInvalidConsoleFormat)
}

func TestMain_invalid_level(t *testing.T) {
	_, _, err := execute(t, "stdout", "--level", "loud")
	assert.ErrorIs(t, err, xlog.ErrUnknownLevel)
}

func TestMain_otlp_invalid_protocol(t *testing.T) {
	_, _, err := execute(t, "otlp", "--protocol", "thrift")
	assert.ErrorIs(t, err, config.ErrInvalidProtocol)
}

func TestMain_rejects_args(t *testing.T) {
	_, _, err := execute(t, "stdout", "extra")
	assert.Error(t, err)
}
