package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// createSaveCommand создает команду save с привязкой к экземпляру приложения
func (app *Application) createSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save [file]",
		Short: "Save the playlist to a file",
		Long:  `Write the playlist with a header line to the given file (default: the configured playlist file).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.saveTo(cmd.OutOrStdout(), optionalArg(args))
		},
	}
}

func (app *Application) saveTo(w io.Writer, path string) error {
	if path == "" {
		path = app.Manager.Path()
	}
	if err := app.Manager.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(w, "💾 Сохранено в %s\n", path)
	return nil
}

// createLoadCommand создает команду load с привязкой к экземпляру приложения
func (app *Application) createLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Append tracks from a file",
		Long: `Read tracks from the given file and append them to the playlist. Malformed lines are skipped.
With autosave enabled the merged playlist is written to the configured playlist file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			path := optionalArg(args)

			if _, err := app.loadFrom(w, path); err != nil {
				return err
			}
			// Файл по умолчанию уже прочитан при запуске; повторное сохранение удвоило бы его
			if path == "" || path == app.Manager.Path() {
				return nil
			}
			return app.autosave(w)
		},
	}
}

func (app *Application) loadFrom(w io.Writer, path string) (int, error) {
	if path == "" {
		path = app.Manager.Path()
	}
	n, err := app.Manager.Load(path)
	if err != nil {
		return n, err
	}
	fmt.Fprintf(w, "📂 Загружено (добавлено) треков: %d из %s\n", n, path)
	return n, nil
}

// optionalArg возвращает первый аргумент или пустую строку
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
