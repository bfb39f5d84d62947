package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// createRemoveCommand создает команду remove с привязкой к экземпляру приложения
func (app *Application) createRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [position]",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a track by its position",
		Long:    `Remove the track at the given position (starting from 1). Later tracks shift up.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := app.removeTrack(w, position); err != nil {
				return err
			}
			return app.autosave(w)
		},
	}
}

func (app *Application) removeTrack(w io.Writer, position int) error {
	t, err := app.Manager.Remove(position)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "🗑️  Удален трек %d: %s — %s\n", position, t.Title, t.Artist)
	return nil
}

// parsePosition разбирает позицию трека; строка должна целиком быть числом
func parsePosition(s string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("неверный номер трека '%s': ожидается число", s)
	}
	return position, nil
}
