package commands

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/ltime/pkg/filter"
	"github.com/ccollicutt/ltime/pkg/input"
)

// FilterOptions holds command-line options for the filter command.
type FilterOptions struct {
	Timezone string
}

// NewFilterCommand creates the command that rewrites timestamps. The root
// command is built from it.
func NewFilterCommand(g *GlobalOptions) *cobra.Command {
	opts := &FilterOptions{}

	cmd := &cobra.Command{
		Use:   "ltime [file...]",
		Short: "Rewrite ISO-8601 timestamps into your timezone",
		Long: `ltime copies its input to standard output, rewriting every ISO-8601
timestamp that carries a zone (2021-01-02T03:04:05Z, ...+00:00, ...-08:00)
into the target timezone. Everything else passes through byte for byte.

With no file, or when file is -, standard input is read. Files are read in
order; glob patterns are expanded.

The target timezone is taken from, in increasing priority: the system local
zone, the config file, the LTIME_TZ environment variable, and --tz. It may
be "local", "utc", a numeric offset such as +09:00, or an IANA name such as
Asia/Tokyo.

Exit codes:
  0 - Success
  1 - Read or write failure
  2 - Configuration error`,
		Example: `  kubectl logs -f deploy/api | ltime
  ltime --tz Asia/Tokyo /var/log/app/*.log
  tail -f app.log | ltime -z -08:00`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Timezone, "tz", "z", "", "Target timezone (local|utc|±HH:MM|IANA name)")

	return cmd
}

func runFilter(cmd *cobra.Command, args []string, g *GlobalOptions, opts *FilterOptions) error {
	cfg, err := loadConfig(cmd.Context(), g, g.ConfigPath, opts.Timezone)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	closer, err := initLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	defer closer.Close()

	f, err := filter.New(cfg.Rule())
	if err != nil {
		return errors.Wrap(err, "creating filter")
	}

	if len(args) == 0 {
		args = []string{input.Stdin}
	}
	paths, err := input.ExpandGlobs(args)
	if err != nil {
		return errors.Wrap(err, "expanding inputs")
	}

	zlog.Debug().
		Str("rule", cfg.Rule().String()).
		Str("config", cfg.Path()).
		Strs("inputs", paths).
		Msg("starting filter")

	out := cmd.OutOrStdout()
	for _, path := range paths {
		rc, err := input.Open(path, cmd.InOrStdin())
		if err != nil {
			return errors.Mark(err, filter.ErrIO)
		}

		stats, err := f.Run(rc, out)
		_ = rc.Close()
		if err != nil {
			return errors.Wrapf(err, "filtering %s", displayName(path))
		}

		zlog.Debug().
			Str("input", displayName(path)).
			Int("lines", stats.Lines).
			Int("matched", stats.Matched).
			Int("rewritten", stats.Rewritten).
			Msg("input finished")
	}

	return nil
}

func displayName(path string) string {
	if path == input.Stdin {
		return "stdin"
	}
	return path
}
