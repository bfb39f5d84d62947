package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play [position]",
		Short: "Play a track by its position (simulated)",
		Long: `Print the track and wait for its duration, but no longer than play_demo_seconds.
No audio is produced. Ctrl+C stops the wait.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			return app.Manager.Play(ctx, position)
		},
	}
}
