package commands

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/ltime/pkg/config"
	"github.com/ccollicutt/ltime/pkg/filter"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Long: `Validate an ltime configuration without filtering anything.

The file named on the command line is used, else --config, else the default
location. Environment overrides are applied. Checks:
  - YAML or TOML syntax
  - Timezone is local, utc, a ±HH:MM offset or a known IANA zone
  - Log level and format values

The resolved settings are printed together with the current time as it
would be rewritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, g)
		},
	}
}

func runValidate(cmd *cobra.Command, args []string, g *GlobalOptions) error {
	configPath := g.ConfigPath
	if len(args) == 1 {
		configPath = args[0]
	}

	cfg, err := loadConfig(cmd.Context(), g, configPath, "")
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}

	f, err := filter.New(cfg.Rule())
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Configuration valid!")
	_, _ = fmt.Fprintln(out, settingsTable(cfg, f, time.Now()))
	return nil
}

// settingsTable renders the resolved settings and a sample rewrite of now.
func settingsTable(cfg *config.Config, f *filter.Filter, now time.Time) string {
	source := cfg.Path()
	if source == "" {
		source = "(defaults)"
	}
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(stderr)"
	}
	sample := now.UTC().Format(time.RFC3339)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Setting", "Value"})
	tw.AppendRows([]table.Row{
		{"Config file", source},
		{"Timezone", cfg.Timezone},
		{"Rule", cfg.Rule().String()},
		{"Log level", cfg.Log.Level},
		{"Log format", cfg.Log.Format},
		{"Log file", logFile},
		{"Sample input", sample},
		{"Sample output", f.RewriteString(sample)},
	})
	return tw.Render()
}
