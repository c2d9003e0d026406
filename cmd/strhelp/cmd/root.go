// Package cmd implements the strhelp command line.
package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/strhelp/internal/config"
	"github.com/Lzww0608/strhelp/internal/logging"
)

// rootOptions carries the persistent flags and the config loaded from them.
type rootOptions struct {
	cfgFile string
	verbose bool
	jsonLog bool
	cfg     *config.Config
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "strhelp",
		Short: "String, identifier and UUID helpers",
		Long: `strhelp generates identifiers and transforms strings.

Commands:
  uuid        - UUIDv7 (default) or UUIDv4
  ulid        - monotonic ULIDs
  uid         - secure random hex
  random      - random strings from a charset
  case        - lower/upper/title/camel/kebab/snake case
  check       - has/starts/ends predicates
  validate    - UUID validation and binary form
  complexity  - password complexity rules`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&o.jsonLog, "json-log", false, "log as JSON")

	root.AddCommand(
		newUUIDCmd(),
		newULIDCmd(),
		newUIDCmd(o),
		newRandomCmd(o),
		newCaseCmd(o),
		newCheckCmd(),
		newValidateCmd(),
		newComplexityCmd(o),
	)
	return root
}

// Execute runs the command line against os.Args.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	level := cfg.Log.Level
	if o.verbose {
		level = "debug"
	}
	logger := logging.New(
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(level),
		logging.WithIsJSON(o.jsonLog || strings.EqualFold(cfg.Log.Format, "json")),
		logging.WithSetDefault(false),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.ContextWithLogger(ctx, logger))

	logger.Debug("config loaded",
		slog.String("path", o.cfgFile),
		slog.String("command", cmd.Name()),
	)
	return nil
}
