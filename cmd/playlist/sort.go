package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// createSortCommand создает команду sort с привязкой к экземпляру приложения
func (app *Application) createSortCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "sort [title|artist|dur]",
		Short:     "Sort the playlist",
		Long:      `Sort by title, by artist then title, or by duration ascending. Text keys ignore ASCII case.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"title", "artist", "dur", "duration"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if err := app.sortTracks(w, args[0]); err != nil {
				return err
			}
			return app.autosave(w)
		},
	}
}

func (app *Application) sortTracks(w io.Writer, keyText string) error {
	key, err := app.Manager.Sort(keyText)
	if err != nil {
		return fmt.Errorf("%w. Используйте title|artist|dur", err)
	}
	fmt.Fprintf(w, "🔤 Отсортировано по %s.\n", key)
	return nil
}

// createShuffleCommand создает команду shuffle с привязкой к экземпляру приложения
func (app *Application) createShuffleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle the playlist",
		Long:  `Randomly permute the playlist order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			app.shuffleTracks(w)
			return app.autosave(w)
		},
	}
}

func (app *Application) shuffleTracks(w io.Writer) {
	app.Manager.Shuffle()
	fmt.Fprintln(w, "🔀 Плейлист перемешан.")
}

// createClearCommand создает команду clear с привязкой к экземпляру приложения
func (app *Application) createClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all tracks from the playlist",
		Long:  `Remove all tracks from the playlist. With autosave enabled the playlist file is emptied too.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			app.clearTracks(w)
			return app.autosave(w)
		},
	}
}

func (app *Application) clearTracks(w io.Writer) {
	app.Manager.Clear()
	fmt.Fprintln(w, "🧹 Плейлист очищен.")
}
