package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	configPath string
	humanMark  string

	rootCmd = &cobra.Command{
		Use:          "tictactoe",
		Short:        "Perfect-play tic-tac-toe engine",
		Long:         `Serves the tic-tac-toe solver over HTTP and WebSocket, or plays against it in the terminal.`,
		SilenceUsage: true,
		RunE:         runServe,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP and WebSocket server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Plays one game against the solver in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Path to the YAML config file.")
	playCmd.Flags().StringVarP(&humanMark, "mark", "m", "X", "Mark you play with (X moves first).")

	rootCmd.AddCommand(serveCmd, playCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	conf := config.MustLoad(configPath)

	if err := app.RunApp(initLogger(conf), conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// runPlay - the config file is optional here, defaults and env are enough.
func runPlay(cmd *cobra.Command, _ []string) error {
	mark, err := entity.ParsePlayer(humanMark)
	if err != nil {
		return err
	}

	path := configPath
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		path = ""
	}

	conf, err := config.Load(path)
	if err != nil {
		return err
	}

	return app.RunConsole(initLogger(conf), conf, mark, cmd.InOrStdin(), cmd.OutOrStdout())
}
