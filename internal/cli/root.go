// Package cli implements the osinfo CLI commands.
package cli

import (
	"context"
	"path/filepath"

	"github.com/dball/osinfo/pkg/osinfo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	db     []string
	format string
	debug  bool
	strict bool
}

// commands builds the subcommands; each command file registers its builder in init.
var commands []func(*options) *cobra.Command

// NewRootCmd returns the top-level command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "osinfo",
		Short:        "Query the osinfo catalog",
		Long:         "Query operating systems, platforms, devices and deployments, and identify installation media and trees.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringArrayVarP(&opts.db, "db", "d", nil, "Catalog path, repeatable, later paths overriding earlier ones (default: $"+osinfo.PathEnv+" or the system paths)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "text", "Output format: json or text")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log debug messages")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Fail on catalog data errors")
	for _, build := range commands {
		root.AddCommand(build(opts))
	}
	return root
}

// paths returns the --db paths in order, each value split as a path list, or else the
// default paths.
func (opts *options) paths() (paths []string) {
	for _, db := range opts.db {
		paths = append(paths, filepath.SplitList(db)...)
	}
	if len(paths) == 0 {
		paths = osinfo.DefaultPaths()
	}
	return
}

func (opts *options) open(cmd *cobra.Command) (db *osinfo.Catalog, err error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	db, err = osinfo.Open(ctx, osinfo.Config{Paths: opts.paths(), Logger: logger})
	if err != nil && !opts.strict {
		err = nil
	}
	return
}
