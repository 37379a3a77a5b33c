// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tbdiag/config"
	"github.com/spf13/cobra"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "tbdiag",
		Short: "Block diagonalization of tight-binding Hamiltonians",
		Long: `tbdiag reads a model description (lattice and explicit hoppings) from YAML,
splits the Hamiltonian into independent blocks and diagonalizes each block.`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to the YAML model description")
	pf.StringVar(&f.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "", "override log.format (text, json)")

	root.AddCommand(newSolveCmd(f), newBlocksCmd(f))

	return root
}

// load reads the config file and applies the log flag overrides.
func (f *rootFlags) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	if f.configPath == "" {
		return nil, nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if err = cfg.Log.Validate(); err != nil {
		return nil, nil, fmt.Errorf("log flags: %w", err)
	}
	logger, err := cfg.Log.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
