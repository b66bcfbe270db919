package main

import (
	"github.com/pstuifzand/tui-codesurfer/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd writes a deck out as markdown
var exportCmd = &cobra.Command{
	Use:   "export DECK [OUTPUT]",
	Short: "Export a deck as markdown",
	Long:  `Writes every step as a section with a code block. Without OUTPUT the markdown goes to stdout.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return export.WriteMarkdown(cmd.OutOrStdout(), deck)
		}
		if err := export.ExportToMarkdown(deck, args[1]); err != nil {
			return err
		}
		logger.Info("Deck exported", zap.String("path", args[1]))
		return nil
	},
}
