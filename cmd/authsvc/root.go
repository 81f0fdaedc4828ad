package main

import (
	"authsvc/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	flagConfigDir = "config"
	flagLogLevel  = "env.log.level"
	flagHTTPPort  = "http.port"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "authsvc",
		Short:         "Account and credential service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.String(flagConfigDir, "", "directory containing config.yaml")
	flags.String(flagLogLevel, "", "log level override (debug, info, warn, error)")
	flags.Int(flagHTTPPort, 8080, "HTTP listen port")

	serveCmd := newServeCmd()
	// Bare "authsvc" serves.
	root.RunE = serveCmd.RunE

	root.AddCommand(
		serveCmd,
		newMigrateCmd(),
		newRoleCmd(),
	)

	return root
}

// loadConfig reads config.yaml with env and command-line overrides applied.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, err := cmd.Flags().GetString(flagConfigDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg, err := config.Load(dir, cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return cfg, nil
}
