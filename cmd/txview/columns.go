package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/txview/internal/config"
)

func newColumnsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show the configured column layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumnsList(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default column layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumnsReset(cmd, flags)
		},
	})

	return cmd
}

func runColumnsList(cmd *cobra.Command, flags *rootFlags) error {
	cfg, _, err := loadConfig("list columns", flags)
	if err != nil {
		return err
	}

	set, err := cfg.ColumnSet()
	if err != nil {
		return newCommandError("list columns", "building the column layout", err, "Run 'txview columns reset'.")
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tTITLE\tWIDTH\tORDER\tVISIBLE")
	for _, col := range set.Columns() {
		visible := "yes"
		if col.Hidden {
			visible = "no"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n", col.Key, col.Title, col.Width, col.Order, visible)
	}
	return writer.Flush()
}

// runColumnsReset rewrites only the columns; other settings in the file are
// kept. Broken files are replaced with the defaults.
func runColumnsReset(cmd *cobra.Command, flags *rootFlags) error {
	path, err := resolveConfigPath(flags)
	if err != nil {
		return newCommandError("reset columns", "determining config path", err, "Pass --config or ensure your HOME directory is set correctly.")
	}

	cfg, err := config.Load(path)
	if err != nil {
		cfg = config.Default()
	}
	cfg.Table.Columns = config.DefaultColumns()

	if err := config.Save(path, cfg); err != nil {
		return newCommandError("reset columns", "writing configuration", err, "Check file permissions and try again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Column layout reset in %s\n", path)
	return nil
}
