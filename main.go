package main

import (
	"fmt"
	"os"

	"github.com/pstuifzand/tui-codesurfer/internal/config"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
	"github.com/pstuifzand/tui-codesurfer/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logPath string

	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "surf",
	Short: "Animated code walkthroughs in the terminal",
	Long: `surf plays code walkthrough decks: a listing of code that changes step by
step, with lines entering, leaving, collapsing and coming into focus.

Decks are JSON, TOML or YAML files with a shared line table and a list of
steps that pick lines from it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		// The player owns the terminal, so it logs to a file
		if cmd.Name() == "play" {
			zc.OutputPaths = []string{logPath}
			zc.ErrorOutputPaths = []string{logPath}
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load()
		if err != nil {
			logger.Warn("Using default config", zap.Error(err))
			cfg = config.Default()
		}
		logger.Debug("Config loaded", zap.String("theme", cfg.Theme), zap.Any("settings", cfg.GetAll()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "surf.log", "Log file used while playing")

	rootCmd.AddCommand(playCmd, remoteCmd, inspectCmd, frameCmd, exportCmd, configCmd)
}

// loadDeck reads a deck file and logs what was found
func loadDeck(path string) (*model.Deck, error) {
	deck, err := storage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	logger.Debug("Deck loaded",
		zap.String("path", path),
		zap.Int("lines", len(deck.Lines)),
		zap.Int("steps", len(deck.Steps)))
	return deck, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
