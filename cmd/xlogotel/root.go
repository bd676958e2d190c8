package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/xlog-otel/internal/config"
)

type flags struct {
	configPath string
	level      string
	console    bool
	format     string
	caller     bool
	nested     bool
	uid        bool
	resource   bool

	protocol    string
	endpoint    string
	insecure    bool
	timeout     time.Duration
	compression string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "xlogotel",
		Short:         "Emit structured log records through OpenTelemetry",
		Version:       "0.3.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&f.level, "level", "l", "", "Minimum level: trace, debug, info, warn, error or fatal")
	pf.BoolVar(&f.console, "console", true, "Also write records to stderr through a console drain")
	pf.StringVar(&f.format, "console-format", "", "Console drain: zerolog, zap or slog")
	pf.BoolVar(&f.caller, "caller", false, "Show the call site in console output")
	pf.BoolVar(&f.nested, "nested", false, "Keep structured values as OTel maps and slices")
	pf.BoolVar(&f.uid, "uid", false, "Stamp every record with a log.record.uid attribute")
	pf.BoolVar(&f.resource, "record-resource", false, "Copy the service resource onto every record")

	stdoutCmd := &cobra.Command{
		Use:   "stdout",
		Short: "Export logs and spans to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd, config.ExporterStdout)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	otlpCmd := &cobra.Command{
		Use:   "otlp",
		Short: "Export logs and spans to an OTLP collector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd, config.ExporterOTLP)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	of := otlpCmd.Flags()
	of.StringVar(&f.protocol, "protocol", "", "OTLP protocol: grpc or http")
	of.StringVar(&f.endpoint, "endpoint", "", "Collector host:port")
	of.BoolVar(&f.insecure, "insecure", true, "Disable TLS")
	of.DurationVar(&f.timeout, "timeout", 0, "Export timeout")
	of.StringVar(&f.compression, "compression", "", "Payload compression: none or gzip")

	root.AddCommand(stdoutCmd, otlpCmd)
	return root
}

// load reads the configuration and lets explicitly set flags override it.
func (f *flags) load(cmd *cobra.Command, exporter string) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Exporter = exporter

	changed := cmd.Flags().Changed
	if changed("level") {
		cfg.Log.Level = f.level
	}
	if changed("console") {
		cfg.Log.Console.Enabled = f.console
	}
	if changed("console-format") {
		cfg.Log.Console.Format = f.format
	}
	if changed("caller") {
		cfg.Log.Caller = f.caller
	}
	if changed("nested") {
		cfg.Log.Nested = f.nested
	}
	if changed("uid") {
		cfg.Log.UID = f.uid
	}
	if changed("record-resource") {
		cfg.Log.Resource = f.resource
	}
	if exporter == config.ExporterOTLP {
		if changed("protocol") {
			cfg.OTLP.Protocol = f.protocol
		}
		if changed("endpoint") {
			cfg.OTLP.Endpoint = f.endpoint
		}
		if changed("insecure") {
			cfg.OTLP.Insecure = f.insecure
		}
		if changed("timeout") {
			cfg.OTLP.Timeout = f.timeout
		}
		if changed("compression") {
			cfg.OTLP.Compression = f.compression
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
