package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/metadata"
	"github.com/hazadus/go-playlist/internal/utils"
)

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [audio files...]",
		Short: "Add tracks from local audio files",
		Long: `Read ID3/MP4/FLAC/OGG tags of each file and add one track per file.
Files without tags are named after "Artist - Title" in the file name. MP3 duration is decoded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			imported, err := app.importFiles(w, args)
			if err != nil {
				return err
			}
			if imported == 0 {
				return nil
			}
			return app.autosave(w)
		},
	}
}

// importFiles добавляет треки из файлов. Ошибка по одному файлу не прерывает импорт остальных;
// ошибка возвращается, только если не удалось импортировать ни одного файла.
func (app *Application) importFiles(w io.Writer, paths []string) (int, error) {
	extractor := metadata.NewExtractor()

	imported := 0
	for _, path := range paths {
		t, err := extractor.ExtractTrack(path)
		if err != nil {
			fmt.Fprintf(w, "⚠️  %s: %v\n", path, err)
			continue
		}

		added, err := app.Manager.AddTrack(t)
		if err != nil {
			fmt.Fprintf(w, "⚠️  %s: %v\n", path, err)
			continue
		}

		imported++
		fmt.Fprintf(w, "✅ Импортирован: %s — %s [%s]\n",
			added.Title, added.Artist, utils.FormatTrackDuration(added.Duration))
	}

	fmt.Fprintf(w, "📦 Импортировано треков: %d из %d\n", imported, len(paths))
	if imported == 0 {
		return 0, fmt.Errorf("не удалось импортировать ни одного файла")
	}
	return imported, nil
}
