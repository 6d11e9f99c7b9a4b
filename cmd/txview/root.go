package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/txview/internal/config"
)

type rootFlags struct {
	configPath       string
	transactionsPath string
	theme            string
	logFile          string
	logLevel         string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "txview",
		Short:         "Browse wallet transactions in a resizable terminal table",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default is the per-user txview/config.yaml)")
	cmd.Flags().StringVarP(&flags.transactionsPath, "transactions", "t", "", "YAML file of transactions (default is the built-in sample)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Colour theme, overriding the config")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write diagnostic logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newColumnsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolveConfigPath returns the --config value or the per-user default.
func resolveConfigPath(flags *rootFlags) (string, error) {
	if path := strings.TrimSpace(flags.configPath); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

func loadConfig(operation string, flags *rootFlags) (*config.Config, string, error) {
	path, err := resolveConfigPath(flags)
	if err != nil {
		return nil, "", newCommandError(operation, "determining config path", err, "Pass --config or ensure your HOME directory is set correctly.")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", newCommandError(operation, "loading configuration", err, "Fix the configuration errors shown above or run 'txview columns reset'.")
	}
	return cfg, path, nil
}
