package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// createSearchCommand создает команду search с привязкой к экземпляру приложения
func (app *Application) createSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Search tracks by title, artist or album",
		Long:  `Case-insensitive substring search over title, artist and album. All arguments form one term.`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.searchTracks(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
}

func (app *Application) searchTracks(w io.Writer, term string) {
	matches := app.Manager.Search(term)
	if len(matches) == 0 {
		fmt.Fprintf(w, "🔍 Нет совпадений для \"%s\".\n", term)
		return
	}

	for _, match := range matches {
		printTrack(w, match.Position+1, match.Track)
	}
}
