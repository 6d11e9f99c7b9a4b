package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/txview/internal/config"
	"github.com/alexisbeaulieu97/txview/internal/ledger"
	"github.com/alexisbeaulieu97/txview/internal/logger"
	"github.com/alexisbeaulieu97/txview/internal/tui/txlist"
	"github.com/alexisbeaulieu97/txview/internal/ui/theme"
)

var errNoTerminal = errors.New("stdout is not a terminal")

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func runTable(cmd *cobra.Command, flags *rootFlags) error {
	model, closer, err := buildModel(flags)
	if err != nil {
		return err
	}
	defer closer.Close()

	if !isTerminal(os.Stdout) {
		return newCommandError("start txview", "opening the table", errNoTerminal, "Run txview from an interactive terminal.")
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		return newCommandError("start txview", "running the table", err, "Check the log file for details.")
	}
	return nil
}

// buildModel wires configuration, logging, transactions and persistence into
// a table model. The closer releases the log file.
func buildModel(flags *rootFlags) (txlist.Model, io.Closer, error) {
	const op = "start txview"

	cfg, path, err := loadConfig(op, flags)
	if err != nil {
		return txlist.Model{}, nil, err
	}
	// The store keeps the file's own settings so flag overrides are not saved.
	store := config.NewFileStore(path, cfg)

	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	log, closer, err := openLogger(cfg.Logging)
	if err != nil {
		return txlist.Model{}, nil, newCommandError(op, "opening the log file", err, "Check --log-file and --log-level.")
	}

	themeName := cfg.Theme
	if flags.theme != "" {
		themeName = flags.theme
	}
	t, ok := theme.ByName(themeName)
	if !ok {
		closer.Close()
		return txlist.Model{}, nil, newCommandError(op, "selecting theme", fmt.Errorf("unknown theme %q", themeName), fmt.Sprintf("Use one of: %v.", theme.Names()))
	}

	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	txs, err := loadTransactions(flags.transactionsPath)
	if err != nil {
		closer.Close()
		return txlist.Model{}, nil, newCommandError(op, "loading transactions", err, "Fix the transactions file and try again.")
	}

	cols, err := cfg.ColumnSet()
	if err != nil {
		closer.Close()
		return txlist.Model{}, nil, newCommandError(op, "building the column layout", err, "Run 'txview columns reset'.")
	}
	defaults, err := config.Default().ColumnSet()
	if err != nil {
		closer.Close()
		return txlist.Model{}, nil, err
	}

	log.WithFields(map[string]any{
		"config":       path,
		"transactions": len(txs),
		"theme":        t.Name,
	}).Info("starting txview")

	model := txlist.NewModel(txlist.Options{
		Transactions: txs,
		Columns:      cols,
		Defaults:     defaults,
		Table: txlist.TableOptions{
			Leeway:         cfg.Table.Leeway,
			Spacing:        cfg.Table.Spacing,
			LeftMargin:     cfg.Table.LeftMargin,
			RightMargin:    cfg.Table.RightMargin,
			InnerRowHeight: cfg.Table.InnerRowHeight,
			MinColumnWidth: cfg.Table.MinColumnWidth,
		},
		Theme:  t,
		Store:  store,
		Logger: log,
	})
	return model, closer, nil
}

// openLogger returns a file logger, or a silent one when no file is set.
func openLogger(cfg config.LoggingConfig) (*logger.Logger, io.Closer, error) {
	if cfg.File == "" {
		return logger.Nop(), nopCloser{}, nil
	}
	return logger.OpenFile(cfg.File, cfg.Level)
}

func loadTransactions(path string) ([]ledger.Transaction, error) {
	if path == "" {
		return ledger.Sample(), nil
	}
	return ledger.Load(path)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
