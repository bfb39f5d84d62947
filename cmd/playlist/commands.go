package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/config"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "playlist",
		Short: "A simple command line playlist manager",
		Long: `A simple command line playlist manager: add, search, sort, shuffle and play tracks
and keep them in a CSV file. Without a subcommand the interactive shell starts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd.OutOrStdout())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runShell(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", config.DefaultPath, "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&app.playlistFile, "file", "f", "", "playlist file (overrides playlist_file from config)")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createAddCommand(ctx))
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createRemoveCommand())
	rootCmd.AddCommand(app.createSearchCommand())
	rootCmd.AddCommand(app.createSortCommand())
	rootCmd.AddCommand(app.createShuffleCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))
	rootCmd.AddCommand(app.createSaveCommand())
	rootCmd.AddCommand(app.createLoadCommand())
	rootCmd.AddCommand(app.createClearCommand())
	rootCmd.AddCommand(app.createShellCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createImportCommand())
	rootCmd.AddCommand(app.createYouTubeCommand(ctx))
	rootCmd.AddCommand(app.createPushCommand(ctx))
	rootCmd.AddCommand(app.createPullCommand(ctx))

	return rootCmd
}
