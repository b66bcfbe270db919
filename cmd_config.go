package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configCmd shows the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "theme = %s\n", cfg.Theme)
		fmt.Fprintf(w, "unfocused_opacity = %g\n", cfg.Opacity())
		fmt.Fprintf(w, "step_duration = %s\n", cfg.Duration())
		fmt.Fprintf(w, "frame_interval = %s\n", cfg.FrameInterval())
		fmt.Fprintf(w, "show_numbers = %t\n", cfg.Numbers())

		settings := cfg.GetAll()
		if len(settings) > 0 {
			fmt.Fprintln(w, "\n[settings]")
			for _, k := range slices.Sorted(maps.Keys(settings)) {
				fmt.Fprintf(w, "%s = %s\n", k, settings[k])
			}
		}
		return nil
	},
}

// configSetCmd persists one setting
var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Persist a setting to the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if cfg.Settings == nil {
			cfg.Settings = make(map[string]string)
		}
		cfg.Settings[key] = value
		if err := cfg.Save(); err != nil {
			return err
		}
		logger.Info("Setting saved", zap.String("key", key), zap.String("value", value))
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
