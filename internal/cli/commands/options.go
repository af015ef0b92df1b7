package commands

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/ltime/internal/logger"
	"github.com/ccollicutt/ltime/pkg/config"
)

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
	LogFile    string
	LogFormat  string
}

// BindGlobalFlags registers the shared flags as persistent flags on cmd.
func BindGlobalFlags(cmd *cobra.Command, g *GlobalOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&g.ConfigPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/ltime/config.yaml)")
	flags.BoolVarP(&g.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.StringVar(&g.LogFile, "log-file", "", "Append diagnostic logs to this file instead of stderr")
	flags.StringVar(&g.LogFormat, "log-format", "", "Diagnostic log format (auto|console|json)")
}

// loadConfig reads the configuration, applies command-line overrides, and
// validates the result once, so a flag can replace a bad file or
// environment value.
func loadConfig(ctx context.Context, g *GlobalOptions, configPath, timezone string) (*config.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Read(ctx, configPath)
	if err != nil {
		return nil, err
	}

	if timezone != "" {
		cfg.Timezone = timezone
	}
	if g.Verbose {
		cfg.Log.Level = "debug"
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}

	if err := config.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return cfg, nil
}

// initLogger starts diagnostic logging on stderr or the configured file.
func initLogger(cfg *config.Config, stderr io.Writer) (io.Closer, error) {
	return logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Stderr: stderr,
	})
}
