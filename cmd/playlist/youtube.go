package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/utils"
	"github.com/hazadus/go-playlist/internal/youtube"
)

// youtubeTimeout ограничивает запрос информации о видео
const youtubeTimeout = 30 * time.Second

// createYouTubeCommand создает команду youtube с привязкой к экземпляру приложения
func (app *Application) createYouTubeCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "youtube [YouTube URL]",
		Short: "Add a track from a YouTube video",
		Long:  `Fetch the video title, channel and duration from YouTube and add them as a track. Nothing is downloaded.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCtx, cancel := context.WithTimeout(ctx, youtubeTimeout)
			defer cancel()

			w := cmd.OutOrStdout()
			if err := app.addFromYouTube(lookupCtx, w, args[0]); err != nil {
				return err
			}
			return app.autosave(w)
		},
	}
}

func (app *Application) addFromYouTube(ctx context.Context, w io.Writer, url string) error {
	resolver := app.Resolver
	if resolver == nil {
		resolver = youtube.NewResolver()
	}

	fmt.Fprintf(w, "🔎 Получаем информацию о видео: %s\n", url)
	t, err := resolver.Lookup(ctx, url)
	if err != nil {
		return err
	}

	added, err := app.Manager.AddTrack(t)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Добавлен: %s — %s [%s]\n",
		added.Title, added.Artist, utils.FormatTrackDuration(added.Duration))
	return nil
}
