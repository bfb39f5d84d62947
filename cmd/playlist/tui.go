package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for managing and playing tracks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.launchTUI(); err != nil {
				return err
			}
			return app.autosave(cmd.OutOrStdout())
		},
	}
}

func (app *Application) launchTUI() error {
	tuiApp := tui.NewApp(app.Manager, app.Player.DemoLength, app.SaveData)

	if err := tuiApp.Run(); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
