package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pstuifzand/tui-codesurfer/internal/app"
	"github.com/pstuifzand/tui-codesurfer/internal/history"
	"github.com/pstuifzand/tui-codesurfer/internal/socket"
	"github.com/pstuifzand/tui-codesurfer/internal/storage"
	"github.com/pstuifzand/tui-codesurfer/internal/theme"
	"github.com/pstuifzand/tui-codesurfer/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	playStep    string
	playWatch   bool
	playNumbers bool
	playOpacity float64
	playRemote  bool
	playResume  bool
)

// playCmd opens the interactive player
var playCmd = &cobra.Command{
	Use:   "play DECK",
	Short: "Play a deck in the terminal",
	Long: `Opens the interactive player. Use the arrow keys to move between steps,
? for help and q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playStep, "step", "s", "", "Start at a step, by number or title")
	playCmd.Flags().BoolVarP(&playWatch, "watch", "w", false, "Reload the deck when the file changes")
	playCmd.Flags().BoolVarP(&playNumbers, "numbers", "n", false, "Show line numbers")
	playCmd.Flags().Float64Var(&playOpacity, "opacity", 0, "Opacity of unfocused lines (0-1)")
	playCmd.Flags().BoolVar(&playResume, "resume", true, "Start where the deck was left off")
	playCmd.Flags().BoolVar(&playRemote, "remote", true, "Accept commands from surf remote")
}

func runPlay(cmd *cobra.Command, args []string) error {
	path := args[0]
	deck, err := loadDeck(path)
	if err != nil {
		return err
	}

	positions, err := history.NewManager()
	if err != nil {
		logger.Warn("Positions not remembered", zap.Error(err))
	}

	start := 0
	switch {
	case playStep != "":
		if start, err = storage.ResolveStep(deck, playStep); err != nil {
			return err
		}
	case playResume && positions != nil:
		if step, ok := positions.Position(path); ok {
			start = step
		}
	}

	applyFlags(cmd)

	screen, err := ui.NewScreenWithTheme(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	player := app.NewApp(screen, deck, app.Options{
		Config:    cfg,
		Logger:    logger,
		StartStep: start,
		Store:     storage.NewDeckStore(path),
	})

	if playWatch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		stop, err := player.Watch(ctx)
		if err != nil {
			player.Close()
			return fmt.Errorf("failed to watch deck: %w", err)
		}
		defer stop()
	}

	if playRemote {
		// Remote control is optional
		server, err := socket.NewServer(socket.DefaultDir(), os.Getpid(), logger)
		if err != nil {
			logger.Warn("Remote control disabled", zap.Error(err))
		} else {
			server.Start()
			defer server.Stop()
			player.Listen(server.Messages())
		}
	}

	logger.Info("Playing deck", zap.String("path", path), zap.Int("step", start))
	if err := player.Run(); err != nil {
		return err
	}

	if positions != nil {
		if err := positions.SavePosition(path, player.Step()); err != nil {
			logger.Warn("Failed to remember position", zap.Error(err))
		}
	}
	return nil
}

// applyFlags turns explicitly set flags into session overrides
func applyFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("numbers") {
		cfg.Set("show_numbers", strconv.FormatBool(playNumbers))
	}
	if cmd.Flags().Changed("opacity") {
		cfg.Set("unfocused_opacity", strconv.FormatFloat(playOpacity, 'f', -1, 64))
	}
}
