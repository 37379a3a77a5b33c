// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newBlocksCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "Print the block structure of the model",
		Long:  `Build the model and print every independent block: its number, first basis position, size and common key prefix.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := rf.load(cmd)
			if err != nil {
				return err
			}
			store, err := cfg.BuildModel()
			if err != nil {
				return err
			}
			logger.Debug("model built",
				slog.Int("basis_size", store.BasisSize()),
				slog.Int("amplitudes", store.Len()),
				slog.Int("blocks", store.NumBlocks()),
			)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "BLOCK\tFIRST\tSIZE\tPREFIX")
			for b, blk := range store.Blocks() {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", b, blk.First, blk.Size, blk.Prefix)
			}

			return tw.Flush()
		},
	}
}
