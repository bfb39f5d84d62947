package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks in the playlist",
		Long:  `Display all tracks of the playlist with their positions.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.listTracks(cmd.OutOrStdout())
		},
	}
}

func (app *Application) listTracks(w io.Writer) {
	tracks := app.Manager.ListTracks()
	if len(tracks) == 0 {
		fmt.Fprintln(w, "📚 Плейлист пуст. Добавьте треки с помощью команды 'add'.")
		return
	}

	fmt.Fprintf(w, "📚 Треков в плейлисте: %d\n\n", len(tracks))
	for i, t := range tracks {
		printTrack(w, i+1, t)
	}
}

// printTrack выводит трек с его позицией (с единицы)
func printTrack(w io.Writer, position int, t playlist.Track) {
	fmt.Fprintf(w, "%3d) %s\n     Исполнитель: %s  Альбом: %s  Длительность: %s\n",
		position, t.Title, t.Artist, t.Album, utils.FormatTrackDuration(t.Duration))
}
